// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package score

import (
	"image"
	"math"

	"github.com/gogpu/tracekit"
)

// Ink is read access to an ink raster. ink.Snapshot and *ink.Raster
// implement it.
type Ink interface {
	Size() image.Point
	AlphaAt(x, y int) uint8
}

// Target is what the ink is scored against, in raster pixels.
type Target struct {
	// Size is the raster size the target was built for.
	Size image.Point
	// Text is the target word, for logging.
	Text string
	// Regions holds one box per glyph. Used by Density.
	Regions []image.Rectangle
	// Mask is the rendered word. Used by Overlap.
	Mask *image.Alpha
}

// Strategy scores ink against a target.
//
// On error the returned Result has Score 0. Errors match
// tracekit.ErrNotReady, tracekit.ErrEmptyTarget or
// tracekit.ErrDimensionMismatch.
type Strategy interface {
	Name() string
	Score(ink Ink, t *Target) (Result, error)
}

// RegionResult is the outcome for one glyph box.
type RegionResult struct {
	Rect     image.Rectangle
	Ratio    float64
	Complete bool
}

// Result is the outcome of one scoring pass.
type Result struct {
	// Score is in [0, 100].
	Score int
	// Regions is set by Density.
	Regions []RegionResult
	// Coverage and StrayRatio are set by Overlap.
	Coverage   float64
	StrayRatio float64
}

// Complete reports whether the round is done.
func (r Result) Complete() bool {
	return r.Score >= 100
}

// Rounding selects how a fractional score becomes an integer.
type Rounding uint8

const (
	// RoundNearest rounds half away from zero: 2 of 3 regions is 67.
	RoundNearest Rounding = iota
	// RoundDown truncates: 2 of 3 regions is 66.
	RoundDown
)

// String returns the rounding name.
func (r Rounding) String() string {
	switch r {
	case RoundNearest:
		return "nearest"
	case RoundDown:
		return "down"
	default:
		return "unknown"
	}
}

// percent converts a fraction in [0, 1] to an integer score.
func (r Rounding) percent(f float64) int {
	f = math.Max(0, math.Min(1, f)) * 100
	if r == RoundDown {
		// Guard against 0.29*100 = 28.999...
		return int(math.Floor(f + 1e-9))
	}
	return int(math.Round(f))
}

// check validates the inputs shared by all strategies.
func check(ink Ink, t *Target) error {
	if ink == nil || t == nil {
		return tracekit.ErrNotReady
	}
	got := ink.Size()
	if got.X <= 0 || got.Y <= 0 {
		return tracekit.ErrNotReady
	}
	if got != t.Size {
		return &tracekit.DimensionMismatchError{Want: t.Size, Got: got}
	}
	return nil
}

func logEmpty(strategy string, t *Target) {
	tracekit.Logger().Warn("score: empty target", "strategy", strategy, "text", t.Text, "size", t.Size)
}
