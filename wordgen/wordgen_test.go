// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wordgen

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/gogpu/tracekit/words"
)

type fakeModels struct {
	reply  string
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompt += p.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    words.Entry
		wantErr bool
	}{
		{"ok", `{"text":"frog","category":"Animals"}`, words.Entry{Text: "frog", Category: "Animals"}, false},
		{"normalized", ` {"text":" Sun ","category":" Sky "} `, words.Entry{Text: "sun", Category: "Sky"}, false},
		{"empty", "", words.Entry{}, true},
		{"not json", "frog", words.Entry{}, true},
		{"no category", `{"text":"frog"}`, words.Entry{}, true},
		{"two words", `{"text":"ice cream","category":"Food"}`, words.Entry{}, true},
		{"digits", `{"text":"c4t","category":"Animals"}`, words.Entry{}, true},
		{"too long", `{"text":"supercalifragilistic","category":"Words"}`, words.Entry{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSuggestion(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSuggestion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidSuggestion) {
					t.Errorf("ParseSuggestion() error = %v, want ErrInvalidSuggestion", err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSuggestion() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeminiSuggest(t *testing.T) {
	fake := &fakeModels{reply: `{"text":"Duck","category":"Animals"}`}
	g := newGemini(fake, "")

	got, err := g.Suggest(context.Background(), []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if got.Text != "duck" || got.Category != "Animals" {
		t.Errorf("Suggest() = %+v, want duck/Animals", got)
	}
	if fake.model != DefaultModel {
		t.Errorf("model = %q, want %q", fake.model, DefaultModel)
	}
	if !strings.Contains(fake.prompt, "Do not use these words: cat, dog.") {
		t.Errorf("prompt = %q, missing exclusions", fake.prompt)
	}
	if fake.config.ResponseMIMEType != "application/json" || fake.config.ResponseSchema == nil {
		t.Errorf("config = %+v, want JSON with a schema", fake.config)
	}
	if diff := cmp.Diff([]string{"text", "category"}, fake.config.ResponseSchema.Required); diff != "" {
		t.Errorf("schema Required mismatch (-want +got):\n%s", diff)
	}
}

func TestGeminiSuggestErrors(t *testing.T) {
	ctx := context.Background()

	g := newGemini(&fakeModels{err: errors.New("quota")}, "gemini-test")
	if _, err := g.Suggest(ctx, nil); err == nil || !strings.Contains(err.Error(), "quota") {
		t.Errorf("Suggest() error = %v, want wrapped quota error", err)
	}

	g = newGemini(&fakeModels{reply: `{"text":"Cat","category":"Animals"}`}, "")
	if _, err := g.Suggest(ctx, []string{"cat"}); !errors.Is(err, ErrInvalidSuggestion) {
		t.Errorf("Suggest() of excluded word error = %v, want ErrInvalidSuggestion", err)
	}
}

func TestGeminiLive(t *testing.T) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		t.Skip("GEMINI_API_KEY not set, skipping integration test")
	}
	ctx := context.Background()
	g, err := NewGemini(ctx, key, "")
	if err != nil {
		t.Fatalf("NewGemini() error = %v", err)
	}
	e, err := g.Suggest(ctx, []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	t.Logf("suggested %q (%s)", e.Text, e.Category)
}
