// Package cache stores finished search results keyed by request digest.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/astar-grid/navigation"
)

// ResultCache is a store of search results. A miss is reported as ok == false
// with a nil error.
type ResultCache interface {
	Get(ctx context.Context, key string) (res navigation.Result, ok bool, err error)
	Set(ctx context.Context, key string, res navigation.Result) error
}

// Key returns the hex sha256 of v's JSON encoding.
// Callers normalize v first so equal requests produce equal keys.
func Key(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
