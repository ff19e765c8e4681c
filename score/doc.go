// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package score judges how well traced ink matches a target word.
//
// Two strategies implement [Strategy]:
//
//   - [Density] checks, per glyph box, whether enough of the box is inked.
//     It answers "did the child mark inside each letter" and is robust to
//     wobble and to font rendering differences.
//   - [Overlap] compares ink against a rendered glyph mask, rewarding ink on
//     the letters and penalizing stray ink outside them.
//
// Both read ink through the [Ink] interface and never modify it. Targets
// are expressed in raster pixels; a target built for a different raster
// size is rejected with a [tracekit.DimensionMismatchError].
package score
