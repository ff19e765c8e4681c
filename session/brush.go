// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/gogpu/gg"
)

// Crayon colors, as CSS hex.
var palette = map[string]string{
	"red":    "#EF4444",
	"blue":   "#3B82F6",
	"green":  "#22C55E",
	"yellow": "#EAB308",
	"purple": "#A855F7",
	"pink":   "#EC4899",
	"black":  "#1F2937",
}

// DefaultBrushName is the brush a session starts with.
const DefaultBrushName = "black"

// BrushNames returns the names accepted by SetBrush, sorted.
func BrushNames() []string {
	names := make([]string, 0, len(palette))
	for n := range palette {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// brushColor resolves a palette name or a "#RRGGBB" literal.
func brushColor(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if hex, ok := palette[name]; ok {
		return gg.Hex(hex).Color(), nil
	}
	if strings.HasPrefix(name, "#") {
		switch len(name) {
		case 4, 5, 7, 9:
			if strings.Trim(name[1:], "0123456789abcdef") == "" {
				return gg.Hex(name).Color(), nil
			}
		}
	}
	return nil, fmt.Errorf("session: unknown brush %q", name)
}
