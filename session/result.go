// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"errors"

	"github.com/gogpu/tracekit"
	"github.com/gogpu/tracekit/score"
	"github.com/gogpu/tracekit/words"
)

// Status classifies a Result.
type Status uint8

const (
	// StatusScored means Score is a real score.
	StatusScored Status = iota
	// StatusNotReady means the surface or the word placement is missing.
	StatusNotReady
	// StatusEmptyTarget means the word has no glyphs or no target pixels.
	StatusEmptyTarget
	// StatusDimensionMismatch means the surface was resized after the
	// target was laid out. The target has been rebuilt; score again.
	StatusDimensionMismatch
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusScored:
		return "scored"
	case StatusNotReady:
		return "not-ready"
	case StatusEmptyTarget:
		return "empty-target"
	case StatusDimensionMismatch:
		return "dimension-mismatch"
	default:
		return "unknown"
	}
}

// Result is what the presentation layer gets from a check.
type Result struct {
	// Score is in [0, 100] and 0 unless Status is StatusScored.
	Score    int
	Status   Status
	Complete bool
	Word     words.Entry
	Regions  []score.RegionResult
}

func statusOf(err error) Status {
	switch {
	case errors.Is(err, tracekit.ErrDimensionMismatch):
		return StatusDimensionMismatch
	case errors.Is(err, tracekit.ErrEmptyTarget):
		return StatusEmptyTarget
	default:
		return StatusNotReady
	}
}
