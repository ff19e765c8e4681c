// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package words supplies the words a child traces: a fixed built-in list
// followed by custom words kept in an injected repository.
package words

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Entry is one traceable word. Only Text feeds glyph layout; the rest is
// presentation.
type Entry struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
	Emoji    string `json:"emoji,omitempty"`
	Category string `json:"category,omitempty"`
}

// Repository stores custom words in insertion order.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, e Entry) error
}

var lower = cases.Lower(language.Und)

// Normalize prepares user input for tracing: NFC composition, lower case,
// surrounding and repeated inner whitespace collapsed to single spaces.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = lower.String(text)
	return strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")
}
