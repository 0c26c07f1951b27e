package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lixenwraith/astar-grid/navigation"
)

// Memory is an in-process ResultCache holding at most capacity entries.
// The least recently used entry is evicted first; entries expire after ttl.
type Memory struct {
	lru *expirable.LRU[string, navigation.Result]
}

// NewMemory creates a cache; capacity below 1 is treated as 1, ttl <= 0 never expires
func NewMemory(capacity int, ttl time.Duration) *Memory {
	return &Memory{
		lru: expirable.NewLRU[string, navigation.Result](max(capacity, 1), nil, ttl),
	}
}

func (m *Memory) Get(_ context.Context, key string) (navigation.Result, bool, error) {
	res, ok := m.lru.Get(key)
	if !ok {
		return navigation.Result{}, false, nil
	}
	return copyResult(res), true, nil
}

func (m *Memory) Set(_ context.Context, key string, res navigation.Result) error {
	m.lru.Add(key, copyResult(res))
	return nil
}

// Len reports the number of cached entries
func (m *Memory) Len() int {
	return m.lru.Len()
}

func copyResult(res navigation.Result) navigation.Result {
	return navigation.Result{
		Path:  slices.Clone(res.Path),
		Trace: slices.Clone(res.Trace),
		Found: res.Found,
	}
}
