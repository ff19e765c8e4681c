// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wordgen suggests new tracing words with a language model.
package wordgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"google.golang.org/genai"

	"github.com/gogpu/tracekit"
	"github.com/gogpu/tracekit/words"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrInvalidSuggestion is returned when the model's answer is not a usable
// word.
var ErrInvalidSuggestion = errors.New("wordgen: invalid suggestion")

// Suggester proposes one word that is not in exclude.
type Suggester interface {
	Suggest(ctx context.Context, exclude []string) (words.Entry, error)
}

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini suggests words with the Gemini API.
type Gemini struct {
	models generator
	model  string
}

// NewGemini creates a Gemini suggester authenticated with apiKey. An empty
// model means DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("wordgen: create genai client: %w", err)
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models generator, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{models: models, model: model}
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {
			Type:        genai.TypeString,
			Description: "The word to trace (lowercase).",
		},
		"category": {
			Type:        genai.TypeString,
			Description: "A simple category for the word (e.g., Animals, Food, Home).",
		},
	},
	Required: []string{"text", "category"},
}

func prompt(exclude []string) string {
	var b strings.Builder
	b.WriteString("Generate a single, simple word suitable for a 3-year-old child to learn to trace and write.\n")
	b.WriteString("The word should be 3-5 letters long. Lowercase only.\n")
	if len(exclude) > 0 {
		fmt.Fprintf(&b, "Do not use these words: %s.\n", strings.Join(exclude, ", "))
	}
	b.WriteString("Return a JSON object.")
	return b.String()
}

// Suggest implements Suggester.
func (g *Gemini) Suggest(ctx context.Context, exclude []string) (words.Entry, error) {
	resp, err := g.models.GenerateContent(ctx, g.model,
		genai.Text(prompt(exclude)),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		},
	)
	if err != nil {
		return words.Entry{}, fmt.Errorf("wordgen: gemini generate: %w", err)
	}
	e, err := ParseSuggestion(resp.Text())
	if err != nil {
		return words.Entry{}, err
	}
	for _, x := range exclude {
		if words.Normalize(x) == e.Text {
			return words.Entry{}, fmt.Errorf("%w: %q is excluded", ErrInvalidSuggestion, e.Text)
		}
	}
	tracekit.Logger().Debug("wordgen: suggestion", "text", e.Text, "category", e.Category)
	return e, nil
}

// ParseSuggestion decodes a {"text", "category"} answer. The word is
// normalized and must be 1-12 letters.
func ParseSuggestion(raw string) (words.Entry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return words.Entry{}, fmt.Errorf("%w: empty response", ErrInvalidSuggestion)
	}
	var s struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return words.Entry{}, fmt.Errorf("%w: %v", ErrInvalidSuggestion, err)
	}
	text := words.Normalize(s.Text)
	category := strings.TrimSpace(s.Category)
	if text == "" || category == "" {
		return words.Entry{}, fmt.Errorf("%w: missing text or category in %s", ErrInvalidSuggestion, raw)
	}
	if n := utf8.RuneCountInString(text); n > 12 {
		return words.Entry{}, fmt.Errorf("%w: %q is too long", ErrInvalidSuggestion, text)
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return words.Entry{}, fmt.Errorf("%w: %q is not a single word", ErrInvalidSuggestion, text)
		}
	}
	return words.Entry{Text: text, Category: category}, nil
}
