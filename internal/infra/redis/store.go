package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"quizmaster/internal/domain"
)

// DefaultPrefix namespaces every key this package writes.
const DefaultPrefix = "quizmaster"

// Each collection lives in one list key, one JSON document per entry, in stored order:
//
//	RPUSH quizmaster:questions {question} ...
//	RPUSH quizmaster:players   {player} ...
//
// A save replaces the whole list inside MULTI/EXEC so readers never see a half-written bank.

func loadList[T any](ctx context.Context, client *redis.Client, key string, capacity int, valid func(T) bool) ([]T, error) {
	raw, err := client.LRange(ctx, key, 0, int64(capacity)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStorageAbsent, key)
	}

	out := make([]T, 0, len(raw))
	skipped := 0
	for _, item := range raw {
		var v T
		if err := json.Unmarshal([]byte(item), &v); err != nil || !valid(v) {
			skipped++
			continue
		}
		out = append(out, v)
	}

	total, err := client.LLen(ctx, key).Result()
	if err == nil && total > int64(len(raw)) {
		return out, fmt.Errorf("%w: %s holds %d entries, capacity %d", domain.ErrStorageCorrupt, key, total, capacity)
	}
	if skipped > 0 {
		return out, fmt.Errorf("%w: %s had %d undecodable entries", domain.ErrStorageCorrupt, key, skipped)
	}
	return out, nil
}

func saveList[T any](ctx context.Context, client *redis.Client, key string, items []T) error {
	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return err
		}
		values = append(values, string(data))
	}

	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
