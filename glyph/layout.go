// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tracekit"
)

// Glyph is one laid-out letter.
type Glyph struct {
	// Text is the rune the glyph renders.
	Text string
	// X is the pen position of the glyph's left edge.
	X float64
	// Advance is the distance to the next glyph, letter spacing included.
	Advance float64
}

// Line is a laid-out target word.
type Line struct {
	Glyphs []Glyph

	baseline float64
	ascent   float64
	descent  float64
	face     font.Face
}

// Layout shapes text in the given style and places it relative to anchor.
//
// Coordinates are in whatever space the style and anchor are expressed in;
// use Style.Scaled and Viewport.PointToRaster to lay out directly in raster
// pixels. Empty text or a non-positive size yields ErrEmptyTarget.
func Layout(text string, st Style, anchor tracekit.Point) (*Line, error) {
	runes := []rune(text)
	if len(runes) == 0 || !(st.Size > 0) {
		return nil, fmt.Errorf("glyph: layout %q at size %g: %w", text, st.Size, tracekit.ErrEmptyTarget)
	}
	f := Lookup(st.Family)
	face, err := f.face(st.Size)
	if err != nil {
		return nil, err
	}

	adv := f.advances(runes, st.Size, face)
	l := &Line{Glyphs: make([]Glyph, len(runes)), face: face}
	pen := 0.0
	for i, r := range runes {
		a := adv[i] + st.LetterSpacing
		l.Glyphs[i] = Glyph{Text: string(r), X: pen, Advance: a}
		pen += a
	}

	var x0 float64
	switch st.Align {
	case AlignCenter:
		x0 = anchor.X - pen/2
	case AlignRight:
		x0 = anchor.X - pen
	default:
		x0 = anchor.X
	}
	for i := range l.Glyphs {
		l.Glyphs[i].X += x0
	}

	m := face.Metrics()
	l.ascent = float64(m.Ascent) / 64
	l.descent = float64(m.Descent) / 64
	switch st.Baseline {
	case BaselineTop:
		l.baseline = anchor.Y + l.ascent
	case BaselineMiddle:
		l.baseline = anchor.Y + (l.ascent-l.descent)/2
	case BaselineBottom:
		l.baseline = anchor.Y - l.descent
	default:
		l.baseline = anchor.Y
	}

	tracekit.Logger().Debug("glyph: layout",
		"text", text, "font", f.Name(), "size", st.Size,
		"width", pen, "baseline", l.baseline)
	return l, nil
}

// Width returns the advance of the whole line.
func (l *Line) Width() float64 {
	if len(l.Glyphs) == 0 {
		return 0
	}
	last := l.Glyphs[len(l.Glyphs)-1]
	return last.X + last.Advance - l.Glyphs[0].X
}

// Baseline returns the y coordinate of the alphabetic baseline.
func (l *Line) Baseline() float64 { return l.baseline }

// Ascent returns the font ascent in pixels.
func (l *Line) Ascent() float64 { return l.ascent }

// Descent returns the font descent in pixels.
func (l *Line) Descent() float64 { return l.descent }

// Rects returns one box per glyph: its advance horizontally and the font's
// ascent-to-descent band vertically, like an inline box around each letter.
func (l *Line) Rects() []tracekit.Rect {
	rs := make([]tracekit.Rect, len(l.Glyphs))
	for i, g := range l.Glyphs {
		rs[i] = tracekit.R(g.X, l.baseline-l.ascent, g.X+g.Advance, l.baseline+l.descent)
	}
	return rs
}

// Boxes returns Rects rounded outward to whole pixels.
func (l *Line) Boxes() []image.Rectangle {
	rs := l.Rects()
	bs := make([]image.Rectangle, len(rs))
	for i, r := range rs {
		bs[i] = image.Rect(
			int(math.Floor(r.Left)), int(math.Floor(r.Top)),
			int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
		)
	}
	return bs
}

// RenderMask draws the line into a new width x height alpha raster.
// Glyphs falling outside the raster are clipped.
func (l *Line) RenderMask(width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: l.face,
	}
	y := fixed.Int26_6(math.Round(l.baseline * 64))
	for _, g := range l.Glyphs {
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(math.Round(g.X * 64)), Y: y}
		d.DrawString(g.Text)
	}
	return mask
}
