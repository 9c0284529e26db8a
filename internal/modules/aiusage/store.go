package aiusage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps per-client daily counters in Redis.
type Store struct {
	rdb *redis.Client
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func usageKey(client string, day time.Time) string {
	return fmt.Sprintf("aiusage:%s:%s", client, day.Format("2006-01-02"))
}

// Incr bumps today's counter for client and returns the new value.
// The key expires after keyTTL so old days clean themselves up.
func (s *Store) Incr(ctx context.Context, client string, day time.Time) (int64, error) {
	key := usageKey(client, day)
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("aiusage: incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

// Decr gives back one generation, used when the counter overshot the quota.
func (s *Store) Decr(ctx context.Context, client string, day time.Time) error {
	key := usageKey(client, day)
	if err := s.rdb.Decr(ctx, key).Err(); err != nil {
		return fmt.Errorf("aiusage: decr %s: %w", key, err)
	}
	return nil
}

// Used returns today's counter for client, zero when unset.
func (s *Store) Used(ctx context.Context, client string, day time.Time) (int64, error) {
	n, err := s.rdb.Get(ctx, usageKey(client, day)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("aiusage: get: %w", err)
	}
	return n, nil
}
