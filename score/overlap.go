// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"math"

	"github.com/gogpu/tracekit"
)

// Overlap compares ink with the rendered target word pixel by pixel.
//
//	coverage = inked target pixels / target pixels
//	stray    = inked non-target pixels / target pixels
//	score    = clamp((coverage - PenaltyWeight*stray) * Boost, 0, 1) * 100
//
// The score is rounded to the nearest integer.
type Overlap struct {
	// MaskCutoff is the mask alpha a pixel must exceed to be a target pixel.
	MaskCutoff uint8
	// InkCutoff is the ink alpha a pixel must exceed to be a user pixel.
	InkCutoff     uint8
	PenaltyWeight float64
	Boost         float64
}

// DefaultOverlap returns the tuned defaults: mask cutoff 100, ink cutoff
// 50, stray penalty 0.3, boost 1.3.
func DefaultOverlap() Overlap {
	return Overlap{
		MaskCutoff:    100,
		InkCutoff:     50,
		PenaltyWeight: 0.3,
		Boost:         1.3,
	}
}

// Name returns "overlap".
func (o Overlap) Name() string { return StrategyOverlap }

func (o Overlap) validate() error {
	if o.PenaltyWeight < 0 || math.IsNaN(o.PenaltyWeight) {
		return fmt.Errorf("%w: overlap penalty weight %g must be non-negative", ErrInvalidConfig, o.PenaltyWeight)
	}
	if !(o.Boost > 0) {
		return fmt.Errorf("%w: overlap boost %g must be positive", ErrInvalidConfig, o.Boost)
	}
	return nil
}

// Score implements Strategy. A zero Overlap is not usable; start from
// DefaultOverlap.
func (o Overlap) Score(ink Ink, t *Target) (Result, error) {
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if err := check(ink, t); err != nil {
		return Result{}, err
	}
	if t.Mask == nil {
		logEmpty(o.Name(), t)
		return Result{}, fmt.Errorf("score: %q has no target mask: %w", t.Text, tracekit.ErrEmptyTarget)
	}
	mb := t.Mask.Bounds()
	if mb.Size() != t.Size {
		return Result{}, &tracekit.DimensionMismatchError{Want: t.Size, Got: mb.Size()}
	}

	var target, hit, stray int
	for y := 0; y < t.Size.Y; y++ {
		row := t.Mask.Pix[y*t.Mask.Stride : y*t.Mask.Stride+t.Size.X]
		for x, m := range row {
			user := ink.AlphaAt(x, y) > o.InkCutoff
			if m > o.MaskCutoff {
				target++
				if user {
					hit++
				}
			} else if user {
				stray++
			}
		}
	}
	if target == 0 {
		logEmpty(o.Name(), t)
		return Result{}, fmt.Errorf("score: %q rendered no target pixels: %w", t.Text, tracekit.ErrEmptyTarget)
	}

	res := Result{
		Coverage:   float64(hit) / float64(target),
		StrayRatio: float64(stray) / float64(target),
	}
	raw := res.Coverage - o.PenaltyWeight*res.StrayRatio
	res.Score = RoundNearest.percent(raw * o.Boost)

	tracekit.Logger().Debug("score: overlap",
		"text", t.Text, "target", target, "hit", hit, "stray", stray, "score", res.Score)
	return res, nil
}
