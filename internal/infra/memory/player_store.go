package memory

import (
	"context"
	"sync"

	"quizmaster/internal/domain"
)

// PlayerStore keeps player history in process memory.
type PlayerStore struct {
	mu      sync.RWMutex
	saved   bool
	players []domain.PlayerRecord
}

func NewPlayerStore(initial ...domain.PlayerRecord) *PlayerStore {
	s := &PlayerStore{}
	if len(initial) > 0 {
		s.saved = true
		s.players = append([]domain.PlayerRecord(nil), initial...)
	}
	return s
}

func (s *PlayerStore) LoadPlayers(_ context.Context) ([]domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return nil, domain.ErrStorageAbsent
	}
	return append([]domain.PlayerRecord(nil), s.players...), nil
}

func (s *PlayerStore) SavePlayers(_ context.Context, players []domain.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = true
	s.players = append([]domain.PlayerRecord(nil), players...)
	return nil
}
