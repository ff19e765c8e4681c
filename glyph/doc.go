// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyph lays out a target word with real font metrics and renders
// the reference mask used for overlap scoring.
//
// It stands in for the browser layout that places one inline box per letter:
// Layout shapes the text with HarfBuzz (go-text/typesetting), applies letter
// spacing, alignment and baseline relative to an anchor, and returns one
// Glyph per rune. Line.Boxes gives the per-letter regions for density
// scoring; Line.RenderMask draws the word into an alpha raster with
// golang.org/x/image/font.
//
// The built-in families are the Go fonts from golang.org/x/image/font/gofont.
// Additional fonts are added with Register.
package glyph
