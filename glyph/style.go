// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

// Align positions a line horizontally relative to its anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the CSS name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Baseline positions a line vertically relative to its anchor.
type Baseline uint8

const (
	// BaselineAlphabetic puts the alphabetic baseline on the anchor.
	BaselineAlphabetic Baseline = iota
	// BaselineTop puts the ascender line on the anchor.
	BaselineTop
	// BaselineMiddle centers the ascent-descent box on the anchor.
	BaselineMiddle
	// BaselineBottom puts the descender line on the anchor.
	BaselineBottom
)

// String returns the canvas name of the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineTop:
		return "top"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Style describes how a target word is rendered.
type Style struct {
	// Family is a CSS-style family list resolved with Lookup.
	Family string
	// Size is the font size in pixels.
	Size     float64
	Align    Align
	Baseline Baseline
	// LetterSpacing is added after every glyph, in pixels.
	LetterSpacing float64
}

// DefaultStyle returns the large, widely tracked lettering of the tracing
// game: centered, middle baseline, letter spacing of 0.1em.
func DefaultStyle() Style {
	return Style{
		Family:        `"Andika", sans-serif`,
		Size:          160,
		Align:         AlignCenter,
		Baseline:      BaselineMiddle,
		LetterSpacing: 16,
	}
}

// Scaled returns the style with size and letter spacing multiplied by k,
// e.g. by the device pixel ratio to move from layout to raster space.
func (s Style) Scaled(k float64) Style {
	s.Size *= k
	s.LetterSpacing *= k
	return s
}
