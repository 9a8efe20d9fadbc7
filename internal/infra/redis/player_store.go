package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"quizmaster/internal/domain"
)

// PlayerStore keeps player history in a Redis list.
type PlayerStore struct {
	client   *redis.Client
	prefix   string
	capacity int
}

func NewPlayerStore(client *redis.Client, prefix string, capacity int) *PlayerStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &PlayerStore{client: client, prefix: prefix, capacity: capacity}
}

func (s *PlayerStore) LoadPlayers(ctx context.Context) ([]domain.PlayerRecord, error) {
	return loadList(ctx, s.client, s.key(), s.capacity, func(p domain.PlayerRecord) bool {
		return p.Name != ""
	})
}

func (s *PlayerStore) SavePlayers(ctx context.Context, players []domain.PlayerRecord) error {
	return saveList(ctx, s.client, s.key(), players)
}

func (s *PlayerStore) key() string {
	return s.prefix + ":players"
}
