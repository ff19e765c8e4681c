// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/tracekit"
)

// DefaultFamily is used when no requested family is registered.
const DefaultFamily = "sans"

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("glyph: empty font data")

// Font is a parsed TrueType or OpenType font. It is parsed twice: once by
// golang.org/x/image for metrics and rasterization, and once by
// go-text/typesetting for shaping. Shaping is optional; when go-text cannot
// read the font, layout falls back to x/image advances and kerning.
type Font struct {
	name   string
	sfnt   *opentype.Font
	shaper *gotext.Font
}

// ParseFont parses font data.
func ParseFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse %s: %w", name, err)
	}
	f := &Font{name: name, sfnt: sf}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		tracekit.Logger().Warn("glyph: shaping unavailable, using plain advances", "font", name, "err", err)
	} else {
		f.shaper = face.Font
	}
	return f, nil
}

// Name returns the name the font was parsed with.
func (f *Font) Name() string {
	return f.name
}

// face returns an x/image face at size pixels (72 DPI, so points equal
// pixels). Faces are not safe for concurrent use, so each layout gets its own.
func (f *Font) face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: face %s@%g: %w", f.name, size, err)
	}
	return face, nil
}

var (
	registryMu   sync.RWMutex
	registry     = map[string]*Font{}
	builtinsOnce sync.Once
)

// generic maps CSS generic families onto built-in fonts.
var generic = map[string]string{
	"sans-serif": "sans",
	"serif":      "sans",
	"cursive":    "sans",
	"fantasy":    "sans-bold",
	"system-ui":  "sans",
	"monospace":  "mono",
}

func loadBuiltins() {
	builtinsOnce.Do(func() {
		for name, data := range map[string][]byte{
			"sans":      goregular.TTF,
			"sans-bold": gobold.TTF,
			"mono":      gomono.TTF,
		} {
			f, err := ParseFont(name, data)
			if err != nil {
				// The Go fonts are embedded; failing here is a build problem.
				panic(err)
			}
			registryMu.Lock()
			if _, ok := registry[name]; !ok {
				registry[name] = f
			}
			registryMu.Unlock()
		}
	})
}

// Register makes f available under family. Family names are matched
// case-insensitively. Registering an existing name replaces it.
func Register(family string, f *Font) {
	loadBuiltins()
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeFamily(family)] = f
}

// Lookup resolves a CSS-style font-family list such as
// `"Andika", sans-serif`. The first registered entry wins; generic families
// map onto the built-in Go fonts. When nothing matches, Lookup returns the
// default family, so it never fails.
func Lookup(families string) *Font {
	loadBuiltins()
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, part := range strings.Split(families, ",") {
		name := normalizeFamily(part)
		if f, ok := registry[name]; ok {
			return f
		}
		if g, ok := generic[name]; ok {
			return registry[g]
		}
	}
	if strings.TrimSpace(families) != "" {
		tracekit.Logger().Debug("glyph: unknown font family, using default", "family", families)
	}
	return registry[DefaultFamily]
}

// Families returns the registered family names.
func Families() []string {
	loadBuiltins()
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalizeFamily(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ToLower(strings.TrimSpace(s))
}
