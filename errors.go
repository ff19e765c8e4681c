// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tracekit

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors shared by the tracekit packages.
var (
	// ErrNotReady is returned when the ink raster or the target geometry is
	// not available yet. Callers should retry once layout has settled.
	ErrNotReady = errors.New("tracekit: not ready")

	// ErrEmptyTarget is returned for a target with no glyphs or no target
	// pixels. It scores 0 and is not fatal.
	ErrEmptyTarget = errors.New("tracekit: empty target")

	// ErrDimensionMismatch is returned when the raster was resized after the
	// target was computed.
	ErrDimensionMismatch = errors.New("tracekit: raster dimension mismatch")
)

// DimensionMismatchError reports the raster size a target was built for and
// the size of the ink it was compared against.
type DimensionMismatchError struct {
	Want image.Point
	Got  image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("tracekit: raster is %dx%d, target was built for %dx%d",
		e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
