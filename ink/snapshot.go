// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import "image"

// Snapshot is a read-only view of the surface raster for scoring. It reads
// the live buffer, so it must be consumed on the UI thread before the next
// stroke segment.
//
// The zero Snapshot, returned alongside ErrNotReady by an unsized surface,
// has zero size and no ink.
type Snapshot struct {
	raster  *Raster
	epoch   uint64
	strokes int
}

// Size returns the physical raster size.
func (s Snapshot) Size() image.Point {
	if s.raster == nil {
		return image.Point{}
	}
	return s.raster.Size()
}

// AlphaAt returns the ink alpha at (x, y).
func (s Snapshot) AlphaAt(x, y int) uint8 {
	if s.raster == nil {
		return 0
	}
	return s.raster.AlphaAt(x, y)
}

// Epoch returns the surface resize generation the snapshot belongs to.
func (s Snapshot) Epoch() uint64 {
	return s.epoch
}

// Strokes returns the number of strokes begun between the last Resize and
// the snapshot. Zero means any ink that was on the surface predates the
// current layout and was discarded.
func (s Snapshot) Strokes() int {
	return s.strokes
}

// Image returns a copy of the ink, e.g. for saving a round to disk.
func (s Snapshot) Image() *image.RGBA {
	if s.raster == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.raster.ToImage()
}
