// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tracekit captures finger or stylus tracing over a canvas and scores
// how well the ink covers a target word.
//
// # Overview
//
// A tracing round has two halves. The stroke capture surface (package ink)
// turns pointer gestures into round-capped ink on a raster sized at device
// resolution. The accuracy scorer (package score) reads a snapshot of that
// raster and compares it with a target: either one rectangle per glyph, or a
// reference mask rendered from the word with real font metrics (package glyph).
//
//	surf := ink.NewSurface()
//	_ = surf.Resize(800, 600, 2) // 1600x1200 raster
//	_ = surf.BeginStroke(tracekit.Pt(120, 80), color.Black, 18, ink.Draw)
//	surf.ExtendStroke(tracekit.Pt(180, 260))
//	surf.EndStroke()
//
//	snap, _ := surf.Snapshot()
//	res, err := score.DefaultDensity().Score(snap, target)
//
// Package session ties both halves to a word library, a debounced auto-check
// and navigation between words.
//
// # Coordinate System
//
// Layout coordinates (CSS pixels) have their origin at the top-left corner of
// the canvas. Raster coordinates are physical pixels. [Viewport] converts
// between the two using the ratio of raster size to CSS size on each axis,
// which equals the device pixel ratio when the canvas was sized by Resize.
//
// # Errors
//
// Scoring refuses to run without ink or target geometry ([ErrNotReady]),
// rejects empty targets ([ErrEmptyTarget]) and detects rasters resized after
// the target was built ([ErrDimensionMismatch]). The session layer turns all
// of them into a zero score with a status, so nothing reaches the UI as a
// fault.
package tracekit
