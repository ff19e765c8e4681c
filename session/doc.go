// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package session runs one tracing game: it owns the ink surface, lays out
// the active word as a scoring target, routes pointer input and scores the
// ink after each stroke once the child pauses.
//
// A Session is driven from a single UI goroutine. The debounced auto-check
// runs on a timer goroutine and is serialized with UI calls by a mutex;
// results are delivered to the handler set with WithResultHandler.
//
// Scoring problems never surface as errors. Check always returns a Result
// whose Status tells a real score apart from "not ready yet", an empty
// target, or a raster that was resized since the target was laid out.
package session
