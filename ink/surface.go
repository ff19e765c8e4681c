// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import (
	"fmt"
	"image/color"

	"github.com/gogpu/tracekit"
)

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	brush Brush
}

func defaultOptions() options {
	return options{brush: DefaultBrush()}
}

// WithBrush sets the brush used for pointer-initiated strokes.
func WithBrush(b Brush) Option {
	return func(o *options) {
		o.brush = b
	}
}

// Surface is the stroke capture surface. It owns the ink raster and is the
// only writer to it.
//
// Drawing commands take layout (CSS) coordinates and line widths; the surface
// scales them by the viewport so ink lands at device resolution. Caps and
// joins are always round.
type Surface struct {
	viewport tracekit.Viewport
	raster   *Raster
	seg      capsule
	epoch    uint64
	strokes  int // begun since the last Resize

	// Active stroke, in raster space.
	drawing bool
	last    tracekit.Point
	color   color.Color
	radius  float64
	mode    Mode

	brush    Brush
	pointer  int
	captured bool
}

// NewSurface creates an unsized surface. Call Resize before drawing.
func NewSurface(opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{brush: o.brush}
}

// Resize reallocates the raster to cssWidth*dpr x cssHeight*dpr pixels.
//
// Resize is safe to call at any time, for example on orientation change, but
// it always discards existing ink and any active stroke, exactly like
// resizing a browser canvas. Every call starts a new epoch, which lets the
// scorer detect targets computed for an earlier layout.
func (s *Surface) Resize(cssWidth, cssHeight, dpr float64) error {
	vp, err := tracekit.NewViewport(cssWidth, cssHeight, dpr)
	if err != nil {
		return fmt.Errorf("ink: resize: %w", err)
	}
	if s.drawing {
		tracekit.Logger().Debug("ink: resize discards active stroke")
	}
	s.endStroke()

	if s.raster != nil && s.raster.Size() == vp.Size() {
		s.raster.Clear()
	} else {
		s.raster = NewRaster(vp.Width, vp.Height)
	}
	s.viewport = vp
	s.epoch++
	s.strokes = 0

	tracekit.Logger().Debug("ink: resize",
		"css_width", cssWidth, "css_height", cssHeight, "dpr", dpr,
		"width", vp.Width, "height", vp.Height, "epoch", s.epoch)
	return nil
}

// BeginStroke starts a new stroke at p. An active stroke is ended first.
// lineWidth is in layout pixels and must be positive. mode applies to every
// segment until the next BeginStroke or SetMode.
func (s *Surface) BeginStroke(p tracekit.Point, col color.Color, lineWidth float64, mode Mode) error {
	if s.raster == nil {
		return fmt.Errorf("ink: begin stroke: %w", tracekit.ErrNotReady)
	}
	if !(lineWidth > 0) {
		return fmt.Errorf("ink: begin stroke: line width %g must be positive", lineWidth)
	}
	if !mode.Valid() {
		return fmt.Errorf("ink: begin stroke: invalid mode %d", mode)
	}
	if col == nil {
		col = color.Black
	}
	s.endStroke()

	scale := (s.viewport.ScaleX() + s.viewport.ScaleY()) / 2
	s.drawing = true
	s.strokes++
	s.last = s.viewport.PointToRaster(p)
	s.color = col
	s.radius = lineWidth * scale / 2
	s.mode = mode
	return nil
}

// ExtendStroke draws a segment from the previous point to p and rasterizes
// it immediately. It is a no-op when no stroke is active.
func (s *Surface) ExtendStroke(p tracekit.Point) {
	if !s.drawing {
		return
	}
	next := s.viewport.PointToRaster(p)
	if mask, dst, ok := s.seg.render(s.raster.Bounds(), s.last, next, s.radius); ok {
		s.raster.composite(dst, mask, s.color, s.mode)
	}
	s.last = next
}

// EndStroke finishes the active stroke and releases pointer capture.
// It is idempotent.
func (s *Surface) EndStroke() {
	s.endStroke()
}

func (s *Surface) endStroke() {
	s.drawing = false
	s.captured = false
}

// Clear resets the raster to fully transparent and ends any active stroke.
func (s *Surface) Clear() {
	s.endStroke()
	if s.raster != nil {
		s.raster.Clear()
	}
}

// Snapshot returns a read-only handle to the current raster.
func (s *Surface) Snapshot() (Snapshot, error) {
	if s.raster == nil {
		return Snapshot{}, fmt.Errorf("ink: snapshot: %w", tracekit.ErrNotReady)
	}
	return Snapshot{raster: s.raster, epoch: s.epoch, strokes: s.strokes}, nil
}

// Mode returns the compositing mode of the active or most recent stroke.
func (s *Surface) Mode() Mode {
	return s.mode
}

// SetMode switches the compositing mode for subsequent segments of the
// active stroke. It does not change the pointer brush.
func (s *Surface) SetMode(m Mode) {
	if m.Valid() {
		s.mode = m
	}
}

// Brush returns the brush used for pointer-initiated strokes.
func (s *Surface) Brush() Brush {
	return s.brush
}

// SetBrush sets the brush used for pointer-initiated strokes.
func (s *Surface) SetBrush(b Brush) {
	s.brush = b
}

// Drawing reports whether a stroke is active.
func (s *Surface) Drawing() bool {
	return s.drawing
}

// Viewport returns the current layout-to-raster mapping.
func (s *Surface) Viewport() tracekit.Viewport {
	return s.viewport
}

// Epoch returns the resize generation. It starts at 0 and increments on
// every Resize.
func (s *Surface) Epoch() uint64 {
	return s.epoch
}

// Strokes returns the number of strokes begun since the last Resize.
func (s *Surface) Strokes() int {
	return s.strokes
}
