// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// DefaultKey is the key custom words are stored under.
const DefaultKey = "tinytracer_custom_words"

// ErrCorrupt is returned when a stored word list cannot be decoded.
var ErrCorrupt = errors.New("words: corrupt word list")

// KV is a string key-value store, the shape of browser local storage.
type KV interface {
	// Get returns the value for key; ok is false when the key is unset.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is an in-memory KV. The zero value is ready to use.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// Get implements KV.
func (kv *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

// Set implements KV.
func (kv *MemoryKV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.m == nil {
		kv.m = make(map[string]string)
	}
	kv.m[key] = value
	return nil
}

// KVRepository stores the custom word list as one JSON array under a
// single key.
type KVRepository struct {
	kv  KV
	key string
	mu  sync.Mutex // serializes read-modify-write in Append
}

// NewKVRepository returns a repository over kv. An empty key means
// DefaultKey.
func NewKVRepository(kv KV, key string) *KVRepository {
	if key == "" {
		key = DefaultKey
	}
	return &KVRepository{kv: kv, key: key}
}

// List decodes the stored list. A missing key is an empty list; an
// undecodable value returns ErrCorrupt.
func (r *KVRepository) List(ctx context.Context) ([]Entry, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("words: get %s: %w", r.key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w under %s: %v", ErrCorrupt, r.key, err)
	}
	return entries, nil
}

// Append adds e to the stored list. A corrupt list is replaced.
func (r *KVRepository) Append(ctx context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.List(ctx)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	entries = append(entries, e)
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("words: encode: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("words: set %s: %w", r.key, err)
	}
	return nil
}
