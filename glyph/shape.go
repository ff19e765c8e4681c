// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances, which keep internal buffers and
// are not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// advances returns the horizontal advance of every rune in runes, in
// pixels. A glyph's advance is credited to the rune its cluster starts at,
// so runes folded into a ligature get zero.
func (f *Font) advances(runes []rune, size float64, face font.Face) []float64 {
	key := advanceKey{font: f, text: string(runes), size: size}
	return advances.getOrCreate(key, func() []float64 {
		if f.shaper != nil {
			if adv, ok := shapeAdvances(f.shaper, runes, size); ok {
				return adv
			}
		}
		return plainAdvances(face, runes)
	})
}

func shapeAdvances(ft *gotext.Font, runes []rune, size float64) ([]float64, bool) {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(ft),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	if len(out.Glyphs) == 0 {
		return nil, false
	}
	adv := make([]float64, len(runes))
	for _, g := range out.Glyphs {
		i := g.TextIndex()
		if i < 0 || i >= len(runes) {
			continue
		}
		adv[i] += float64(g.Advance) / 64
	}
	return adv, true
}

// plainAdvances uses x/image advances plus pair kerning.
func plainAdvances(face font.Face, runes []rune) []float64 {
	adv := make([]float64, len(runes))
	for i, r := range runes {
		a, _ := face.GlyphAdvance(r)
		if i+1 < len(runes) {
			a += face.Kern(r, runes[i+1])
		}
		adv[i] = float64(a) / 64
	}
	return adv
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
