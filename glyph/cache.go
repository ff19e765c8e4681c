// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"container/list"
	"slices"
	"sync"
	"sync/atomic"
)

// advanceCacheSize bounds the number of shaped runs kept. A session
// reshapes the same handful of words on every resize and navigation.
const advanceCacheSize = 256

// advanceKey identifies one shaped run.
type advanceKey struct {
	font *Font
	text string
	size float64
}

type advanceEntry struct {
	key advanceKey
	adv []float64
}

// advanceCache is an LRU of per-rune advances. It is safe for concurrent use.
// Cached slices are never modified; get returns copies.
type advanceCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[advanceKey]*list.Element
	lru      *list.List

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newAdvanceCache(capacity int) *advanceCache {
	return &advanceCache{
		capacity: capacity,
		entries:  make(map[advanceKey]*list.Element),
		lru:      list.New(),
	}
}

var advances = newAdvanceCache(advanceCacheSize)

// getOrCreate returns the cached advances for key or computes them with
// create. create runs without the lock held, so two goroutines may shape the
// same run once each.
func (c *advanceCache) getOrCreate(key advanceKey, create func() []float64) []float64 {
	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		adv := el.Value.(*advanceEntry).adv
		c.mu.Unlock()
		c.hits.Add(1)
		return slices.Clone(adv)
	}
	c.mu.Unlock()
	c.misses.Add(1)

	adv := create()

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		return slices.Clone(adv)
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		delete(c.entries, oldest.Value.(*advanceEntry).key)
		c.lru.Remove(oldest)
	}
	c.entries[key] = c.lru.PushFront(&advanceEntry{key: key, adv: adv})
	return slices.Clone(adv)
}

func (c *advanceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *advanceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[advanceKey]*list.Element)
	c.lru.Init()
}
