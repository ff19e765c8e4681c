// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tracekit

import (
	"fmt"
	"image"
	"math"
)

// Point is a position in layout (CSS pixel) or raster space, depending on
// context.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the distance of the point from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rect is an axis-aligned rectangle in layout space, typically the bounding
// box of a rendered glyph relative to the canvas origin.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R is a convenience function to create a Rect.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Sub translates the rectangle so that origin becomes (0, 0). Use it to turn
// client-space boxes into canvas-relative ones.
func (r Rect) Sub(origin Point) Rect {
	return Rect{
		Left:   r.Left - origin.X,
		Top:    r.Top - origin.Y,
		Right:  r.Right - origin.X,
		Bottom: r.Bottom - origin.Y,
	}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Viewport maps layout coordinates onto a raster. Width and Height are the
// physical raster size; CSSWidth and CSSHeight are the size the raster is
// displayed at.
type Viewport struct {
	CSSWidth, CSSHeight float64
	Width, Height       int
}

// NewViewport returns the viewport of a canvas displayed at cssWidth x
// cssHeight on a screen with the given device pixel ratio. The raster size is
// truncated to whole pixels, like assigning to a canvas width attribute.
func NewViewport(cssWidth, cssHeight, dpr float64) (Viewport, error) {
	if !(cssWidth > 0) || !(cssHeight > 0) || !(dpr > 0) {
		return Viewport{}, fmt.Errorf("tracekit: invalid viewport %gx%g @%g", cssWidth, cssHeight, dpr)
	}
	w := int(cssWidth * dpr)
	h := int(cssHeight * dpr)
	if w <= 0 || h <= 0 {
		return Viewport{}, fmt.Errorf("tracekit: viewport %gx%g @%g has no pixels", cssWidth, cssHeight, dpr)
	}
	return Viewport{CSSWidth: cssWidth, CSSHeight: cssHeight, Width: w, Height: h}, nil
}

// Valid reports whether the viewport describes a non-empty raster.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && v.CSSWidth > 0 && v.CSSHeight > 0
}

// Size returns the raster size.
func (v Viewport) Size() image.Point {
	return image.Pt(v.Width, v.Height)
}

// ScaleX returns the number of raster pixels per layout pixel horizontally.
func (v Viewport) ScaleX() float64 {
	return float64(v.Width) / v.CSSWidth
}

// ScaleY returns the number of raster pixels per layout pixel vertically.
func (v Viewport) ScaleY() float64 {
	return float64(v.Height) / v.CSSHeight
}

// PointToRaster converts a layout point into raster space.
func (v Viewport) PointToRaster(p Point) Point {
	return Point{X: p.X * v.ScaleX(), Y: p.Y * v.ScaleY()}
}

// RectToRaster converts a layout rectangle into raster pixels. Every edge is
// floored after scaling and the result is clamped to the raster bounds, so a
// box that lies entirely off the canvas maps to an empty rectangle.
func (v Viewport) RectToRaster(r Rect) image.Rectangle {
	sx, sy := v.ScaleX(), v.ScaleY()
	x0 := int(math.Floor(r.Left * sx))
	y0 := int(math.Floor(r.Top * sy))
	x1 := int(math.Floor(r.Right * sx))
	y1 := int(math.Floor(r.Bottom * sy))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, v.Width, v.Height))
}
