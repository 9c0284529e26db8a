package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRowsKey is the list every plan row is pushed onto.
const RedisRowsKey = "plans:rows"

// RedisSink pushes each row as a JSON document onto a Redis list.
type RedisSink struct {
	rdb *redis.Client
	key string
}

func NewRedisSink(rdb *redis.Client) *RedisSink {
	return &RedisSink{rdb: rdb, key: RedisRowsKey}
}

func (s *RedisSink) Append(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	values := make([]any, 0, len(rows))
	for _, r := range rows {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("redis sink: marshal row: %w", err)
		}
		values = append(values, b)
	}
	if err := s.rdb.RPush(ctx, s.key, values...).Err(); err != nil {
		return fmt.Errorf("redis sink: rpush %s: %w", s.key, err)
	}
	return nil
}
