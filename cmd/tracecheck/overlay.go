// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/tracekit/score"
)

// writeOverlay renders the target mask, the ink and the scored glyph boxes
// on white and saves the result as PNG.
func writeOverlay(path string, ink image.Image, t *score.Target, res score.Result) error {
	dc := gg.NewContext(t.Size.X, t.Size.Y)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	if t.Mask != nil {
		dc.DrawImage(gg.ImageBufFromImage(tint(t.Mask, gg.Hex("#BAE6FD"))), 0, 0)
	}
	dc.DrawImage(gg.ImageBufFromImage(ink), 0, 0)

	dc.SetLineWidth(3)
	for i, r := range t.Regions {
		complete := i < len(res.Regions) && res.Regions[i].Complete
		if complete {
			dc.SetHexColor("#22C55E")
		} else {
			dc.SetHexColor("#EF4444")
		}
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return dc.SavePNG(path)
}

// tint paints mask in c.
func tint(mask *image.Alpha, c gg.RGBA) *image.NRGBA {
	b := mask.Bounds()
	out := image.NewNRGBA(b)
	base := c.Color().(color.NRGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			px := base
			px.A = a
			out.SetNRGBA(x, y, px)
		}
	}
	return out
}
