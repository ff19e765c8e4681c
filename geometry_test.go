// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tracekit

import (
	"errors"
	"fmt"
	"image"
	"testing"
)

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		dpr     float64
		want    image.Point
		wantErr bool
	}{
		{"dpr 1", 800, 600, 1, image.Pt(800, 600), false},
		{"dpr 2", 800, 600, 2, image.Pt(1600, 1200), false},
		{"fractional dpr truncates", 333, 100, 1.5, image.Pt(499, 150), false},
		{"zero width", 0, 600, 2, image.Point{}, true},
		{"negative height", 800, -1, 2, image.Point{}, true},
		{"zero dpr", 800, 600, 0, image.Point{}, true},
		{"sub-pixel canvas", 0.2, 0.2, 1, image.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewViewport(tt.w, tt.h, tt.dpr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewViewport() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v.Size() != tt.want {
				t.Errorf("Size() = %v, want %v", v.Size(), tt.want)
			}
		})
	}
}

func TestViewportRectToRaster(t *testing.T) {
	v, err := NewViewport(800, 600, 2)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		in   Rect
		want image.Rectangle
	}{
		{"inside", R(50, 50, 100, 150), image.Rect(100, 100, 200, 300)},
		{"fractional edges floor", R(10.3, 10.7, 20.2, 20.9), image.Rect(20, 21, 40, 41)},
		{"clamped", R(-10, -10, 900, 700), image.Rect(0, 0, 1600, 1200)},
		{"off canvas", R(900, 10, 950, 20), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.RectToRaster(tt.in); got != tt.want {
				t.Errorf("RectToRaster(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestViewportNonUniformScale(t *testing.T) {
	// A raster stretched differently per axis keeps independent scales.
	v := Viewport{CSSWidth: 100, CSSHeight: 100, Width: 200, Height: 300}
	p := v.PointToRaster(Pt(10, 10))
	if p != Pt(20, 30) {
		t.Errorf("PointToRaster() = %v, want (20, 30)", p)
	}
}

func TestRectSub(t *testing.T) {
	got := R(110, 220, 130, 260).Sub(Pt(100, 200))
	if want := R(10, 20, 30, 60); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if !R(5, 5, 5, 10).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestDimensionMismatchError(t *testing.T) {
	var err error = &DimensionMismatchError{Want: image.Pt(1600, 1200), Got: image.Pt(800, 600)}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Error("errors.Is(err, ErrDimensionMismatch) = false, want true")
	}
	wrapped := fmt.Errorf("score: %w", err)
	var dm *DimensionMismatchError
	if !errors.As(wrapped, &dm) || dm.Want.X != 1600 {
		t.Errorf("errors.As() did not recover the mismatch: %v", wrapped)
	}
	if errors.Is(err, ErrNotReady) {
		t.Error("mismatch must not match ErrNotReady")
	}
}
