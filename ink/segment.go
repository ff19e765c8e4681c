// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/tracekit"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// capsule rasterizes round-capped line segments into a reusable coverage
// buffer. Rendering each segment as a capsule (a rectangle with two half
// discs) gives round caps and, between consecutive segments, round joins.
type capsule struct {
	z   vector.Rasterizer
	buf []uint8
}

// render computes coverage for the segment p0->p1 with the given radius, in
// raster coordinates. It returns the mask and the raster rectangle the mask
// maps onto, clipped to bounds. ok is false when nothing lands on the raster.
func (c *capsule) render(bounds image.Rectangle, p0, p1 tracekit.Point, radius float64) (mask *image.Alpha, dst image.Rectangle, ok bool) {
	pad := radius + 1
	box := image.Rect(
		int(math.Floor(math.Min(p0.X, p1.X)-pad)),
		int(math.Floor(math.Min(p0.Y, p1.Y)-pad)),
		int(math.Ceil(math.Max(p0.X, p1.X)+pad)),
		int(math.Ceil(math.Max(p0.Y, p1.Y)+pad)),
	).Intersect(bounds)
	if box.Empty() {
		return nil, image.Rectangle{}, false
	}

	w, h := box.Dx(), box.Dy()
	if cap(c.buf) < w*h {
		c.buf = make([]uint8, w*h)
	}
	mask = &image.Alpha{Pix: c.buf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}

	origin := tracekit.Pt(float64(box.Min.X), float64(box.Min.Y))
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Src
	c.path(p0.Sub(origin), p1.Sub(origin), radius)
	c.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, box, true
}

// path emits the capsule outline. A zero-length segment becomes a disc, which
// is how a tap with a round cap renders.
func (c *capsule) path(p0, p1 tracekit.Point, r float64) {
	d := p1.Sub(p0)
	l := d.Length()
	if l < 1e-9 {
		d = tracekit.Pt(1, 0)
	} else {
		d = d.Mul(1 / l)
	}
	n := tracekit.Pt(-d.Y, d.X)

	start := p0.Add(n.Mul(r))
	c.z.MoveTo(float32(start.X), float32(start.Y))
	end := p1.Add(n.Mul(r))
	c.z.LineTo(float32(end.X), float32(end.Y))
	c.arc(p1, n, d, r)
	c.arc(p1, d, n.Mul(-1), r)
	back := p0.Sub(n.Mul(r))
	c.z.LineTo(float32(back.X), float32(back.Y))
	c.arc(p0, n.Mul(-1), d.Mul(-1), r)
	c.arc(p0, d.Mul(-1), n, r)
	c.z.ClosePath()
}

// arc appends a quarter circle around center from direction u to direction v.
func (c *capsule) arc(center, u, v tracekit.Point, r float64) {
	c1 := center.Add(u.Add(v.Mul(kappa)).Mul(r))
	c2 := center.Add(v.Add(u.Mul(kappa)).Mul(r))
	to := center.Add(v.Mul(r))
	c.z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(to.X), float32(to.Y))
}
