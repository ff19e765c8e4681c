// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

// Mode selects how new ink is composited onto the raster.
type Mode uint8

const (
	// Draw paints the brush color over existing ink (source-over).
	Draw Mode = iota

	// Erase removes existing ink in proportion to the brush alpha
	// (destination-out).
	Erase
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Draw:
		return "draw"
	case Erase:
		return "erase"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Draw || m == Erase
}
