// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package words

import (
	"context"
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/tracekit"
)

// FallbackEmoji marks custom words added without a picture.
const FallbackEmoji = "📝"

// ErrEmptyWord is returned when adding a word that is blank after
// normalization.
var ErrEmptyWord = errors.New("words: empty word")

//go:embed defaults.json
var defaultsJSON []byte

var builtins = func() []Entry {
	var es []Entry
	if err := json.Unmarshal(defaultsJSON, &es); err != nil {
		panic(fmt.Sprintf("words: embedded defaults: %v", err))
	}
	return es
}()

// Builtins returns the built-in words.
func Builtins() []Entry {
	return slices.Clone(builtins)
}

// Library is the ordered word list: built-ins followed by custom words.
type Library struct {
	repo Repository
}

// NewLibrary returns a library over repo. A nil repo keeps custom words in
// memory.
func NewLibrary(repo Repository) *Library {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	return &Library{repo: repo}
}

// Entries returns built-ins followed by custom words. A corrupt custom list
// is logged and skipped, so the built-ins are always available.
func (l *Library) Entries(ctx context.Context) ([]Entry, error) {
	custom, err := l.repo.List(ctx)
	if errors.Is(err, ErrCorrupt) {
		tracekit.Logger().Error("words: failed to load custom words", "err", err)
		custom, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	return append(Builtins(), custom...), nil
}

// Texts returns the text of every entry.
func (l *Library) Texts(ctx context.Context) ([]string, error) {
	es, err := l.Entries(ctx)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(es))
	for i, e := range es {
		texts[i] = e.Text
	}
	return texts, nil
}

// Add normalizes text and appends a custom word. Words without an image
// get FallbackEmoji.
func (l *Library) Add(ctx context.Context, text, imageURL string) (Entry, error) {
	text = Normalize(text)
	if text == "" {
		return Entry{}, ErrEmptyWord
	}
	e := Entry{
		ID:       newID(),
		Text:     text,
		ImageURL: imageURL,
	}
	if imageURL == "" {
		e.Emoji = FallbackEmoji
	}
	if err := l.repo.Append(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("words: add %q: %w", text, err)
	}
	tracekit.Logger().Info("words: added custom word", "id", e.ID, "text", e.Text)
	return e, nil
}

func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
