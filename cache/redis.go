package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/astar-grid/navigation"
)

const keyPrefix = "astar:result:"

// Redis keeps results in Redis with a fixed TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; entries expire after ttlSeconds.
func NewRedis(client *redis.Client, ttlSeconds int) *Redis {
	return &Redis{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// storedResult is the wire form of a cached result
type storedResult struct {
	Found bool     `json:"found"`
	Path  [][2]int `json:"path"`
	Trace [][2]int `json:"trace"`
}

func (r *Redis) Get(ctx context.Context, key string) (navigation.Result, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return navigation.Result{}, false, nil
	}
	if err != nil {
		return navigation.Result{}, false, fmt.Errorf("redis get: %w", err)
	}

	var stored storedResult
	if err := json.Unmarshal(data, &stored); err != nil {
		return navigation.Result{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	return navigation.Result{
		Found: stored.Found,
		Path:  fromPairs(stored.Path),
		Trace: fromPairs(stored.Trace),
	}, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, res navigation.Result) error {
	data, err := json.Marshal(storedResult{
		Found: res.Found,
		Path:  toPairs(res.Path),
		Trace: toPairs(res.Trace),
	})
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func toPairs(points []navigation.Point) [][2]int {
	if points == nil {
		return nil
	}
	pairs := make([][2]int, len(points))
	for i, p := range points {
		pairs[i] = [2]int{p.Row, p.Col}
	}
	return pairs
}

func fromPairs(pairs [][2]int) []navigation.Point {
	if pairs == nil {
		return nil
	}
	points := make([]navigation.Point, len(pairs))
	for i, p := range pairs {
		points[i] = navigation.Point{Row: p[0], Col: p[1]}
	}
	return points
}
