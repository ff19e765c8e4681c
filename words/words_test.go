// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package words

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cat", "cat"},
		{"  DOG  ", "dog"},
		{"ice   cream", "ice cream"},
		{"Café", "café"},
		{"\t\n", ""},
		{"ÄPFEL", "äpfel"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	bs := Builtins()
	if len(bs) != 10 {
		t.Fatalf("len(Builtins()) = %d, want 10", len(bs))
	}
	if bs[0].Text != "bed" || bs[1].Text != "cat" || bs[9].Text != "socks" {
		t.Errorf("Builtins() order = %q, %q ... %q", bs[0].Text, bs[1].Text, bs[9].Text)
	}
	for _, b := range bs {
		if b.Emoji == "" || b.ImageURL == "" || b.Category == "" {
			t.Errorf("builtin %q missing presentation fields: %+v", b.Text, b)
		}
	}
	// Callers get a copy.
	bs[0].Text = "changed"
	if Builtins()[0].Text != "bed" {
		t.Error("Builtins() returned shared storage")
	}
}

func TestLibraryAdd(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(nil)

	e, err := lib.Add(ctx, "  Sun ", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if e.Text != "sun" || e.Emoji != FallbackEmoji || e.ID == "" {
		t.Errorf("Add() = %+v, want text sun with fallback emoji and an ID", e)
	}
	pic, err := lib.Add(ctx, "Moon", "data:image/jpeg;base64,AAAA")
	if err != nil {
		t.Fatal(err)
	}
	if pic.Emoji != "" {
		t.Errorf("Add() with image Emoji = %q, want empty", pic.Emoji)
	}
	if pic.ID == e.ID {
		t.Error("Add() reused an ID")
	}

	texts, err := lib.Texts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(texts) != 12 || texts[10] != "sun" || texts[11] != "moon" {
		t.Errorf("Texts() = %v, want built-ins then sun, moon", texts)
	}

	if _, err := lib.Add(ctx, "   ", ""); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Add(blank) error = %v, want ErrEmptyWord", err)
	}
}

func TestKVRepository(t *testing.T) {
	ctx := context.Background()
	kv := &MemoryKV{}
	repo := NewKVRepository(kv, "")

	got, err := repo.List(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("List() on empty store = %v, %v", got, err)
	}

	want := []Entry{
		{ID: "1", Text: "sun", Emoji: FallbackEmoji},
		{ID: "2", Text: "moon", ImageURL: "https://example.com/moon.png"},
	}
	for _, e := range want {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
	got, err = repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	raw, ok, _ := kv.Get(ctx, DefaultKey)
	if !ok {
		t.Fatalf("nothing stored under %q", DefaultKey)
	}
	const wantRaw = `[{"id":"1","text":"sun","emoji":"📝"},{"id":"2","text":"moon","imageUrl":"https://example.com/moon.png"}]`
	if raw != wantRaw {
		t.Errorf("stored JSON = %s, want %s", raw, wantRaw)
	}
}

func TestCorruptCustomWords(t *testing.T) {
	ctx := context.Background()
	kv := &MemoryKV{}
	_ = kv.Set(ctx, DefaultKey, "{not json")
	repo := NewKVRepository(kv, DefaultKey)

	if _, err := repo.List(ctx); !errors.Is(err, ErrCorrupt) {
		t.Errorf("List() error = %v, want ErrCorrupt", err)
	}

	lib := NewLibrary(repo)
	es, err := lib.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(es) != len(Builtins()) {
		t.Errorf("len(Entries()) = %d, want built-ins only", len(es))
	}

	// Appending replaces the corrupt list.
	if _, err := lib.Add(ctx, "kite", ""); err != nil {
		t.Fatal(err)
	}
	es, _ = lib.Entries(ctx)
	if last := es[len(es)-1]; last.Text != "kite" {
		t.Errorf("last entry = %q, want kite", last.Text)
	}
}

func TestSQLiteKV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")

	kv, err := OpenSQLiteKV(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLiteKV() error = %v", err)
	}
	if _, ok, err := kv.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v, want false, nil", ok, err)
	}
	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, "a", "2"); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(NewKVRepository(kv, ""))
	added, err := lib.Add(ctx, "Frog", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and read back.
	kv, err = OpenSQLiteKV(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	if v, ok, err := kv.Get(ctx, "a"); v != "2" || !ok || err != nil {
		t.Errorf("Get(a) = %q, %v, %v, want 2, true, nil", v, ok, err)
	}
	custom, err := NewKVRepository(kv, "").List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Entry{added}, custom, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("custom words mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryRepositoryCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(Entry{Text: "a"})
	list, _ := repo.List(ctx)
	list[0].Text = "b"
	again, _ := repo.List(ctx)
	if again[0].Text != "a" {
		t.Error("List() exposed internal storage")
	}
}
