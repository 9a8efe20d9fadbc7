package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"quizmaster/internal/domain"
)

// QuestionStore keeps the question bank in a Redis list.
type QuestionStore struct {
	client   *redis.Client
	prefix   string
	capacity int
}

func NewQuestionStore(client *redis.Client, prefix string, capacity int) *QuestionStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &QuestionStore{client: client, prefix: prefix, capacity: capacity}
}

func (s *QuestionStore) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	return loadList(ctx, s.client, s.key(), s.capacity, func(q domain.Question) bool {
		return q.Validate() == nil
	})
}

func (s *QuestionStore) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	return saveList(ctx, s.client, s.key(), questions)
}

func (s *QuestionStore) key() string {
	return s.prefix + ":questions"
}
