package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"quizmaster/internal/domain"
)

// PlayerRepository keeps the per-player score history, keyed by exact name.
type PlayerRepository struct {
	store      PlayerStore
	maxPlayers int

	mu      sync.RWMutex
	players []domain.PlayerRecord
}

func NewPlayerRepository(store PlayerStore, maxPlayers int) *PlayerRepository {
	return &PlayerRepository{store: store, maxPlayers: maxPlayers}
}

// Load reads the store; absent or corrupt data is recovered, never returned.
func (r *PlayerRepository) Load(ctx context.Context) {
	players, err := r.store.LoadPlayers(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStorageAbsent):
		players = nil
	case errors.Is(err, domain.ErrStorageCorrupt):
		log.Printf("player store corrupt, recovered %d players: %v", len(players), err)
	default:
		log.Printf("player store unreadable, starting empty: %v", err)
		players = nil
	}
	if len(players) > r.maxPlayers {
		players = players[:r.maxPlayers]
	}

	r.mu.Lock()
	r.players = players
	r.mu.Unlock()
}

func (r *PlayerRepository) List() []domain.PlayerRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PlayerRecord, len(r.players))
	copy(out, r.players)
	return out
}

func (r *PlayerRepository) Find(name string) (domain.PlayerRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(domain.Truncate(name, domain.MaxPlayerName)); i >= 0 {
		return r.players[i], true
	}
	return domain.PlayerRecord{}, false
}

// Upsert records score for name at difficulty d. Only that difficulty's slot changes on an
// existing record. A new player at capacity is dropped (logged, not an error); the store is
// rewritten either way.
func (r *PlayerRepository) Upsert(ctx context.Context, name string, d domain.Difficulty, score int) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDifficulty, int(d))
	}
	name = domain.Truncate(name, domain.MaxPlayerName)
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidPlayerName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.PlayerRecord, len(r.players), len(r.players)+1)
	copy(next, r.players)
	if i := r.indexLocked(name); i >= 0 {
		next[i].Scores[d] = score
	} else if len(next) < r.maxPlayers {
		record := domain.NewPlayerRecord(name)
		record.Scores[d] = score
		next = append(next, record)
	} else {
		log.Printf("player history full (%d), dropping score for %q", r.maxPlayers, name)
	}

	if err := r.store.SavePlayers(ctx, next); err != nil {
		return fmt.Errorf("save players: %w", err)
	}
	r.players = next
	return nil
}

func (r *PlayerRepository) indexLocked(name string) int {
	for i := range r.players {
		if r.players[i].Name == name {
			return i
		}
	}
	return -1
}
