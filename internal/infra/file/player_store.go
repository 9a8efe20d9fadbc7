package file

import (
	"context"
	"fmt"

	"quizmaster/internal/domain"
)

// PlayerStore persists player history to a single binary file.
type PlayerStore struct {
	path     string
	capacity int
}

func NewPlayerStore(path string, capacity int) *PlayerStore {
	return &PlayerStore{path: path, capacity: capacity}
}

func (s *PlayerStore) LoadPlayers(_ context.Context) ([]domain.PlayerRecord, error) {
	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	return decodeRecords(data, PlayerRecordSize, s.capacity, decodePlayer)
}

func (s *PlayerStore) SavePlayers(_ context.Context, players []domain.PlayerRecord) error {
	if err := writeFileAtomic(s.path, encodePlayers(players)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
