// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"image"

	"github.com/gogpu/tracekit"
)

// Density marks a glyph complete when the estimated share of inked pixels
// in its box reaches Threshold. The score is the share of complete glyphs.
//
// Only every Stride-th pixel of each axis is read; each hit stands for
// Stride*Stride pixels. Ratios near the threshold are therefore subject to
// sampling noise of roughly one sample row.
type Density struct {
	// OpacityCutoff is the ink alpha a pixel must exceed to count.
	OpacityCutoff uint8
	// Threshold is the inked fraction of a box that completes it.
	Threshold float64
	// Stride is the sampling step in both axes, at least 1.
	Stride   int
	Rounding Rounding
}

// DefaultDensity returns the tuned defaults: cutoff 50, threshold 3%,
// stride 4, round to nearest.
func DefaultDensity() Density {
	return Density{
		OpacityCutoff: 50,
		Threshold:     0.03,
		Stride:        4,
		Rounding:      RoundNearest,
	}
}

// Name returns "density".
func (d Density) Name() string { return StrategyDensity }

func (d Density) validate() error {
	if d.Threshold <= 0 || d.Threshold > 1 {
		return fmt.Errorf("%w: density threshold %g out of range (0, 1]", ErrInvalidConfig, d.Threshold)
	}
	if d.Stride < 1 {
		return fmt.Errorf("%w: density stride %d must be at least 1", ErrInvalidConfig, d.Stride)
	}
	return nil
}

// Score implements Strategy. A zero Density is not usable; start from
// DefaultDensity.
func (d Density) Score(ink Ink, t *Target) (Result, error) {
	if err := d.validate(); err != nil {
		return Result{}, err
	}
	if err := check(ink, t); err != nil {
		return Result{}, err
	}
	if len(t.Regions) == 0 {
		logEmpty(d.Name(), t)
		return Result{}, fmt.Errorf("score: %q has no glyph regions: %w", t.Text, tracekit.ErrEmptyTarget)
	}

	bounds := image.Rectangle{Max: t.Size}
	res := Result{Regions: make([]RegionResult, len(t.Regions))}
	completed := 0
	for i, r := range t.Regions {
		rr := d.region(ink, r.Intersect(bounds))
		res.Regions[i] = rr
		if rr.Complete {
			completed++
		}
	}
	res.Score = d.Rounding.percent(float64(completed) / float64(len(t.Regions)))

	tracekit.Logger().Debug("score: density",
		"text", t.Text, "regions", len(t.Regions), "complete", completed, "score", res.Score)
	return res, nil
}

// region estimates the inked fraction of r, which must lie inside the raster.
func (d Density) region(ink Ink, r image.Rectangle) RegionResult {
	res := RegionResult{Rect: r}
	if r.Empty() {
		return res
	}
	step := d.Stride
	hits := 0
	for y := r.Min.Y; y < r.Max.Y; y += step {
		for x := r.Min.X; x < r.Max.X; x += step {
			if ink.AlphaAt(x, y) > d.OpacityCutoff {
				hits++
			}
		}
	}
	estimated := float64(hits * step * step)
	// Edge samples can extrapolate past the box.
	res.Ratio = min(estimated/float64(r.Dx()*r.Dy()), 1)
	res.Complete = res.Ratio >= d.Threshold
	return res
}
