package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"quizmaster/internal/domain"
)

// PlayerStore keeps player history in the quiz_players table.
type PlayerStore struct {
	pool     *pgxpool.Pool
	capacity int
}

func NewPlayerStore(pool *pgxpool.Pool, capacity int) *PlayerStore {
	return &PlayerStore{pool: pool, capacity: capacity}
}

func (s *PlayerStore) LoadPlayers(ctx context.Context) ([]domain.PlayerRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, scores FROM quiz_players ORDER BY position LIMIT $1`, s.capacity+1)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	defer rows.Close()

	var (
		out     []domain.PlayerRecord
		read    int
		skipped int
	)
	for rows.Next() {
		read++
		if read > s.capacity {
			break
		}
		var (
			p      domain.PlayerRecord
			scores []int32
		)
		if err := rows.Scan(&p.Name, &scores); err != nil {
			return out, fmt.Errorf("scan player: %w", err)
		}
		if p.Name == "" || len(scores) != domain.DifficultyCount {
			skipped++
			continue
		}
		for i, v := range scores {
			p.Scores[i] = int(v)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("load players: %w", err)
	}

	switch {
	case read == 0:
		return nil, fmt.Errorf("%w: quiz_players is empty", domain.ErrStorageAbsent)
	case read > s.capacity:
		return out, fmt.Errorf("%w: quiz_players exceeds capacity %d", domain.ErrStorageCorrupt, s.capacity)
	case skipped > 0:
		return out, fmt.Errorf("%w: skipped %d malformed players", domain.ErrStorageCorrupt, skipped)
	}
	return out, nil
}

// SavePlayers replaces the table contents in one transaction.
func (s *PlayerStore) SavePlayers(ctx context.Context, players []domain.PlayerRecord) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM quiz_players`); err != nil {
			return fmt.Errorf("clear players: %w", err)
		}
		for i, p := range players {
			scores := make([]int32, len(p.Scores))
			for d, v := range p.Scores {
				scores[d] = int32(v)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO quiz_players (position, name, scores) VALUES ($1, $2, $3)`,
				i, p.Name, scores); err != nil {
				return fmt.Errorf("insert player %d: %w", i, err)
			}
		}
		return nil
	})
}
