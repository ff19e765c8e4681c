// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package words

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps custom words in memory. The zero value is ready
// to use and safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRepository returns a repository seeded with entries.
func NewMemoryRepository(entries ...Entry) *MemoryRepository {
	return &MemoryRepository{entries: slices.Clone(entries)}
}

// List returns a copy of the stored words.
func (m *MemoryRepository) List(ctx context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.entries), nil
}

// Append adds e at the end.
func (m *MemoryRepository) Append(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}
