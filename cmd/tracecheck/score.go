// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gogpu/tracekit"
	"github.com/gogpu/tracekit/glyph"
	"github.com/gogpu/tracekit/ink"
	"github.com/gogpu/tracekit/score"
)

type scoreFlags struct {
	ink       string
	word      string
	dpr       float64
	anchor    string
	size      float64
	spacing   float64
	family    string
	strategy  string
	threshold float64
	stride    int
	overlay   string
}

func parseScoreFlags(e env, args []string) (scoreFlags, error) {
	st := glyph.DefaultStyle()
	f := scoreFlags{}
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.StringVar(&f.ink, "ink", "", "ink PNG at device resolution (required)")
	fs.StringVar(&f.word, "word", "", "target word (required)")
	fs.Float64Var(&f.dpr, "dpr", 1, "device pixel ratio the ink was captured at")
	fs.StringVar(&f.anchor, "anchor", "", "word anchor in layout pixels as x,y (default: raster center)")
	fs.Float64Var(&f.size, "size", st.Size, "font size in layout pixels")
	fs.Float64Var(&f.spacing, "spacing", st.LetterSpacing, "letter spacing in layout pixels")
	fs.StringVar(&f.family, "font", st.Family, "CSS font-family list")
	fs.StringVar(&f.strategy, "strategy", e.Strategy, "density or overlap")
	fs.Float64Var(&f.threshold, "threshold", e.Threshold, "density threshold")
	fs.IntVar(&f.stride, "stride", e.Stride, "density sampling stride")
	fs.StringVar(&f.overlay, "overlay", "", "write a diagnostic PNG here")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.ink == "" || f.word == "" {
		return f, errors.New("score: -ink and -word are required")
	}
	if !(f.dpr > 0) {
		return f, fmt.Errorf("score: -dpr %g must be positive", f.dpr)
	}
	return f, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (tracekit.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return tracekit.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return tracekit.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return tracekit.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return tracekit.Pt(x, y), nil
}

type report struct {
	Word       string               `json:"word"`
	Strategy   string               `json:"strategy"`
	Score      int                  `json:"score"`
	Complete   bool                 `json:"complete"`
	Coverage   float64              `json:"coverage,omitempty"`
	StrayRatio float64              `json:"strayRatio,omitempty"`
	Regions    []score.RegionResult `json:"regions,omitempty"`
}

func runScore(ctx context.Context, e env, args []string, out io.Writer) error {
	f, err := parseScoreFlags(e, args)
	if err != nil {
		return err
	}

	img, err := loadImage(f.ink)
	if err != nil {
		return err
	}
	raster := ink.FromImage(img)
	size := raster.Size()

	// Lay out in raster pixels: anchor and style scale by the DPR.
	anchor := tracekit.Pt(float64(size.X)/2, float64(size.Y)/2)
	if f.anchor != "" {
		p, err := parsePoint(f.anchor)
		if err != nil {
			return err
		}
		anchor = p.Mul(f.dpr)
	}
	st := glyph.DefaultStyle()
	st.Family, st.Size, st.LetterSpacing = f.family, f.size, f.spacing
	line, err := glyph.Layout(f.word, st.Scaled(f.dpr), anchor)
	if err != nil {
		return err
	}
	t := &score.Target{
		Size:    size,
		Text:    f.word,
		Regions: line.Boxes(),
		Mask:    line.RenderMask(size.X, size.Y),
	}

	cfg := score.DefaultConfig()
	cfg.Strategy = f.strategy
	cfg.Density.Threshold = f.threshold
	cfg.Density.Stride = f.stride
	strategy, err := score.New(cfg)
	if err != nil {
		return err
	}
	res, err := strategy.Score(raster, t)
	if err != nil {
		return err
	}
	log.Info().
		Str("word", f.word).
		Str("strategy", strategy.Name()).
		Int("score", res.Score).
		Msg("scored")

	if f.overlay != "" {
		if err := writeOverlay(f.overlay, raster, t, res); err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
		log.Info().Str("path", f.overlay).Msg("wrote overlay")
	}
	return writeReport(out, report{
		Word:       f.word,
		Strategy:   strategy.Name(),
		Score:      res.Score,
		Complete:   res.Complete(),
		Coverage:   res.Coverage,
		StrayRatio: res.StrayRatio,
		Regions:    res.Regions,
	})
}

func writeReport(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func loadImage(path string) (image.Image, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
