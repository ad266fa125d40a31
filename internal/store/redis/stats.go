package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Store records usage statistics about license resolutions. It only ever
// holds counters: no parsed license is persisted or replayed from here.
type Store struct {
	client *redis.Client
}

// NewStore creates a new statistics store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Stats is a snapshot of the usage counters.
type Stats struct {
	Total       int64            `json:"total"`
	Resolutions map[string]int64 `json:"resolutions"` // rights code -> count
	Failures    map[string]int64 `json:"failures"`    // error kind -> count
}

// RecordResolution increments the counter for a successfully resolved
// rights code (ex: "CC BY-NC-SA").
func (s *Store) RecordResolution(ctx context.Context, rights string) error {
	pipe := s.client.Pipeline()
	pipe.HIncrBy(ctx, KeyResolutions, rights, 1)
	pipe.Incr(ctx, KeyTotal)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record resolution: %w", err)
	}
	return nil
}

// RecordFailure increments the counter for a parse error kind
// (ex: "unknown_license_code").
func (s *Store) RecordFailure(ctx context.Context, kind string) error {
	pipe := s.client.Pipeline()
	pipe.HIncrBy(ctx, KeyFailures, kind, 1)
	pipe.Incr(ctx, KeyTotal)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

// GetStats retrieves a snapshot of all counters.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	total, err := s.client.Get(ctx, KeyTotal).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get total counter: %w", err)
	}

	resolutions, err := s.hashCounters(ctx, KeyResolutions)
	if err != nil {
		return nil, err
	}

	failures, err := s.hashCounters(ctx, KeyFailures)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Total:       total,
		Resolutions: resolutions,
		Failures:    failures,
	}, nil
}

func (s *Store) hashCounters(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get counters at %s: %w", key, err)
	}

	counters := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			// Skip fields something else wrote into the hash.
			continue
		}
		counters[field] = n
	}
	return counters, nil
}
