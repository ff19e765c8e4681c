// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import (
	"image/color"

	"github.com/gogpu/tracekit"
)

// PointerKind identifies a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
	PointerCancel
)

// String returns the event name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one input device event. Pos is in layout (CSS) pixels
// relative to the surface origin.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	Pos  tracekit.Point
}

// Brush is the stroke style used for pointer-initiated strokes.
type Brush struct {
	Color color.Color
	Width float64 // layout pixels
	Mode  Mode
}

// DefaultBrush returns the slate-black crayon used by the tracing game.
func DefaultBrush() Brush {
	return Brush{
		Color: color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF},
		Width: 18,
		Mode:  Draw,
	}
}

// HandlePointer routes one pointer event to the stroke operations.
//
// Pointer-down starts a stroke with the current brush and captures the
// pointer, so moves keep drawing even when the finger leaves the surface.
// While a pointer is captured, moves from other pointers are ignored.
// Pointer-up, leave and cancel of the captured pointer end the stroke and
// release capture. The return value reports whether a stroke ended.
func (s *Surface) HandlePointer(ev PointerEvent) (ended bool) {
	switch ev.Kind {
	case PointerDown:
		if err := s.BeginStroke(ev.Pos, s.brush.Color, s.brush.Width, s.brush.Mode); err != nil {
			tracekit.Logger().Debug("ink: pointer down ignored", "pointer", ev.ID, "err", err)
			return false
		}
		s.pointer = ev.ID
		s.captured = true
	case PointerMove:
		if s.captured && ev.ID == s.pointer {
			s.ExtendStroke(ev.Pos)
		}
	case PointerUp, PointerLeave, PointerCancel:
		if s.captured && ev.ID == s.pointer {
			s.EndStroke()
			return true
		}
	}
	return false
}

// Captured returns the captured pointer ID, if any.
func (s *Surface) Captured() (id int, ok bool) {
	return s.pointer, s.captured
}
