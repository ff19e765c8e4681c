// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/tracekit"
	"github.com/gogpu/tracekit/glyph"
	"github.com/gogpu/tracekit/score"
)

func testEnv() env {
	d := score.DefaultDensity()
	return env{LogLevel: "error", Strategy: score.StrategyDensity, Threshold: d.Threshold, Stride: d.Stride}
}

// writeInk saves a PNG whose ink covers exactly the rendered word.
func writeInk(t *testing.T, word string, w, h int, dpr float64) string {
	t.Helper()
	st := glyph.DefaultStyle()
	line, err := glyph.Layout(word, st.Scaled(dpr), tracekit.Pt(float64(w)/2, float64(h)/2))
	if err != nil {
		t.Fatal(err)
	}
	mask := line.RenderMask(w, h)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A > 100 {
				img.SetNRGBA(x, y, color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF})
			}
		}
	}
	path := filepath.Join(t.TempDir(), "ink.png")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	if err := png.Encode(fh, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScore(t *testing.T) {
	inkPath := writeInk(t, "cat", 1200, 600, 2)
	overlay := filepath.Join(t.TempDir(), "overlay.png")

	tests := []struct {
		strategy string
		want     int
	}{
		{score.StrategyDensity, 100},
		{score.StrategyOverlap, 100},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			var out bytes.Buffer
			args := []string{"-ink", inkPath, "-word", "cat", "-dpr", "2", "-strategy", tt.strategy, "-overlay", overlay}
			if err := runScore(context.Background(), testEnv(), args, &out); err != nil {
				t.Fatalf("runScore() error = %v", err)
			}
			var r report
			if err := json.Unmarshal(out.Bytes(), &r); err != nil {
				t.Fatalf("report is not JSON: %v\n%s", err, out.String())
			}
			if r.Score != tt.want || !r.Complete || r.Strategy != tt.strategy {
				t.Errorf("report = %+v, want %s score %d", r, tt.strategy, tt.want)
			}
			if _, err := os.Stat(overlay); err != nil {
				t.Errorf("overlay not written: %v", err)
			}
		})
	}
}

func TestRunScoreWrongWord(t *testing.T) {
	inkPath := writeInk(t, "on", 1200, 600, 2)
	var out bytes.Buffer
	args := []string{"-ink", inkPath, "-word", "socks", "-dpr", "2", "-strategy", "overlap"}
	if err := runScore(context.Background(), testEnv(), args, &out); err != nil {
		t.Fatal(err)
	}
	var r report
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatal(err)
	}
	if r.Score >= 100 {
		t.Errorf("Score = %d for ink of a different word, want < 100", r.Score)
	}
}

func TestParseScoreFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"ok", []string{"-ink", "a.png", "-word", "cat"}, false},
		{"no ink", []string{"-word", "cat"}, true},
		{"no word", []string{"-ink", "a.png"}, true},
		{"bad dpr", []string{"-ink", "a.png", "-word", "cat", "-dpr", "0"}, true},
		{"unknown flag", []string{"-nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScoreFlags(testEnv(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseScoreFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    tracekit.Point
		wantErr bool
	}{
		{"400,300", tracekit.Pt(400, 300), false},
		{" 1.5 , -2 ", tracekit.Pt(1.5, -2), false},
		{"400", tracekit.Point{}, true},
		{"a,b", tracekit.Point{}, true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parsePoint(%q) = %v, %v, want %v (err %v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRACE_STRATEGY", "overlap")
	t.Setenv("TRACE_DENSITY_THRESHOLD", "0.1")
	t.Setenv("TRACE_STRIDE", "oops")
	e := loadEnv()
	if e.Strategy != "overlap" || e.Threshold != 0.1 {
		t.Errorf("loadEnv() = %+v, want overlap with threshold 0.1", e)
	}
	if e.Stride != score.DefaultDensity().Stride {
		t.Errorf("Stride = %d, want default for malformed value", e.Stride)
	}
}
