// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ink implements the stroke capture surface: a raster sized to its
// container at device resolution that turns pointer gestures into opaque,
// round-capped ink.
//
// The model is immediate-mode. Only pixels persist; stroke geometry is
// discarded once a segment has been rasterized, so there is no undo by
// stroke. Each ExtendStroke rasterizes one segment as a capsule, which gives
// round caps at the ends and round joins between consecutive segments while
// keeping the work proportional to the segment length.
//
// A Surface is not safe for concurrent use; it is driven from one UI thread.
package ink
