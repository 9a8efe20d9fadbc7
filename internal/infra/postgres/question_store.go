package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"quizmaster/internal/domain"
)

// QuestionStore keeps the question bank in the quiz_questions table, ordered by position.
type QuestionStore struct {
	pool     *pgxpool.Pool
	capacity int
}

func NewQuestionStore(pool *pgxpool.Pool, capacity int) *QuestionStore {
	return &QuestionStore{pool: pool, capacity: capacity}
}

func (s *QuestionStore) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT prompt, options, correct, difficulty FROM quiz_questions ORDER BY position LIMIT $1`,
		s.capacity+1)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var (
		out     []domain.Question
		read    int
		skipped int
	)
	for rows.Next() {
		read++
		if read > s.capacity {
			break
		}
		var (
			q          domain.Question
			options    []string
			difficulty int32
			correct    int32
		)
		if err := rows.Scan(&q.Text, &options, &correct, &difficulty); err != nil {
			return out, fmt.Errorf("scan question: %w", err)
		}
		q.Correct = int(correct)
		q.Difficulty = domain.Difficulty(difficulty)
		if len(options) != domain.OptionCount || q.Validate() != nil {
			skipped++
			continue
		}
		copy(q.Options[:], options)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("load questions: %w", err)
	}

	switch {
	case read == 0:
		return nil, fmt.Errorf("%w: quiz_questions is empty", domain.ErrStorageAbsent)
	case read > s.capacity:
		return out, fmt.Errorf("%w: quiz_questions exceeds capacity %d", domain.ErrStorageCorrupt, s.capacity)
	case skipped > 0:
		return out, fmt.Errorf("%w: skipped %d malformed questions", domain.ErrStorageCorrupt, skipped)
	}
	return out, nil
}

// SaveQuestions replaces the table contents in one transaction.
func (s *QuestionStore) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM quiz_questions`); err != nil {
			return fmt.Errorf("clear questions: %w", err)
		}
		for i, q := range questions {
			if _, err := tx.Exec(ctx,
				`INSERT INTO quiz_questions (position, prompt, options, correct, difficulty) VALUES ($1, $2, $3, $4, $5)`,
				i, q.Text, q.Options[:], q.Correct, int(q.Difficulty)); err != nil {
				return fmt.Errorf("insert question %d: %w", i, err)
			}
		}
		return nil
	})
}
