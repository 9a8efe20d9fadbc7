package app

import (
	"context"

	"quizmaster/internal/domain"
)

// QuestionStore persists the whole question bank in one shot (file, Redis, Postgres, memory).
type QuestionStore interface {
	// LoadQuestions returns the stored questions. It may return a partial result together with
	// domain.ErrStorageCorrupt, or domain.ErrStorageAbsent when nothing was ever saved.
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
	// SaveQuestions atomically replaces the stored collection.
	SaveQuestions(ctx context.Context, questions []domain.Question) error
}

// PlayerStore persists player history with the same load/save contract as QuestionStore.
type PlayerStore interface {
	LoadPlayers(ctx context.Context) ([]domain.PlayerRecord, error)
	SavePlayers(ctx context.Context, players []domain.PlayerRecord) error
}

// SessionRepository abstracts where live sessions are kept between front-end calls.
type SessionRepository interface {
	Put(session *Session)
	Get(handle string) (*Session, bool)
	Delete(handle string)
}
