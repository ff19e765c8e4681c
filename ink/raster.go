// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import (
	"image"
	"image/color"
	"image/draw"
)

// Raster is the ink pixel buffer: premultiplied RGBA, 4 bytes per pixel,
// row-major with no padding.
type Raster struct {
	img *image.RGBA
}

// NewRaster creates a fully transparent raster.
func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies img into a new raster. It is used to replay ink saved
// as an image.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	draw.Draw(r.img, r.img.Bounds(), img, b.Min, draw.Src)
	return r
}

// Width returns the width of the raster in pixels.
func (r *Raster) Width() int {
	return r.img.Rect.Dx()
}

// Height returns the height of the raster in pixels.
func (r *Raster) Height() int {
	return r.img.Rect.Dy()
}

// Size returns the raster dimensions.
func (r *Raster) Size() image.Point {
	return r.img.Rect.Size()
}

// Data returns the raw pixel data.
func (r *Raster) Data() []uint8 {
	return r.img.Pix
}

// AlphaAt returns the alpha of a single pixel. Out-of-range coordinates are
// transparent.
func (r *Raster) AlphaAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= r.img.Rect.Max.X || y >= r.img.Rect.Max.Y {
		return 0
	}
	return r.img.Pix[y*r.img.Stride+x*4+3]
}

// Clear resets every pixel to fully transparent.
func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// ToImage returns a copy of the raster as an image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(r.img.Rect)
	copy(img.Pix, r.img.Pix)
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return r.img.Rect
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// composite applies a coverage mask to the raster. mask is in local
// coordinates starting at (0, 0) and lands on dst within the raster.
func (r *Raster) composite(dst image.Rectangle, mask *image.Alpha, col color.Color, mode Mode) {
	if mode == Draw {
		draw.DrawMask(r.img, dst, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
		return
	}

	// Destination-out: keep dst scaled by (1 - srcAlpha*coverage).
	const m = 1<<16 - 1
	_, _, _, sa := col.RGBA()
	w := dst.Dx()
	for y := 0; y < dst.Dy(); y++ {
		mi := y * mask.Stride
		di := (dst.Min.Y+y)*r.img.Stride + dst.Min.X*4
		for x := 0; x < w; x, mi, di = x+1, mi+1, di+4 {
			ma := uint32(mask.Pix[mi])
			if ma == 0 {
				continue
			}
			ma |= ma << 8
			a := (m - sa*ma/m) * 0x101
			p := r.img.Pix[di : di+4 : di+4]
			p[0] = uint8(uint32(p[0]) * a / m >> 8)
			p[1] = uint8(uint32(p[1]) * a / m >> 8)
			p[2] = uint8(uint32(p[2]) * a / m >> 8)
			p[3] = uint8(uint32(p[3]) * a / m >> 8)
		}
	}
}
