package app_test

import (
	"context"
	"errors"
	"testing"

	"quizmaster/internal/app"
	"quizmaster/internal/domain"
	"quizmaster/internal/infra/memory"
)

func TestUpsertCreatesThenUpdatesOneRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPlayerStore()
	repo := app.NewPlayerRepository(store, 100)
	repo.Load(ctx)

	if err := repo.Upsert(ctx, "Alice", domain.Medium, 30); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	players := repo.List()
	if len(players) != 1 || players[0].Name != "Alice" || players[0].Scores != [3]int{-1, 30, -1} {
		t.Fatalf("unexpected players %+v", players)
	}

	if err := repo.Upsert(ctx, "Alice", domain.Easy, 10); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	players = repo.List()
	if len(players) != 1 || players[0].Scores != [3]int{10, 30, -1} {
		t.Fatalf("expected same record updated, got %+v", players)
	}

	persisted, err := store.LoadPlayers(ctx)
	if err != nil || len(persisted) != 1 || persisted[0] != players[0] {
		t.Fatalf("upsert not written through: %+v err=%v", persisted, err)
	}
}

func TestUpsertMatchesNamesExactly(t *testing.T) {
	ctx := context.Background()
	repo := app.NewPlayerRepository(memory.NewPlayerStore(), 100)
	repo.Load(ctx)

	_ = repo.Upsert(ctx, "alice", domain.Hard, 5)
	_ = repo.Upsert(ctx, "Alice", domain.Hard, 7)
	if n := len(repo.List()); n != 2 {
		t.Fatalf("expected case-sensitive names to be distinct, got %d records", n)
	}
	if rec, ok := repo.Find("alice"); !ok || rec.Scores[domain.Hard] != 5 {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestUpsertAtCapacityDropsNewPlayers(t *testing.T) {
	ctx := context.Background()
	repo := app.NewPlayerRepository(memory.NewPlayerStore(), 2)
	repo.Load(ctx)

	_ = repo.Upsert(ctx, "A", domain.Easy, 1)
	_ = repo.Upsert(ctx, "B", domain.Easy, 2)
	if err := repo.Upsert(ctx, "C", domain.Easy, 3); err != nil {
		t.Fatalf("dropped upsert should not fail: %v", err)
	}
	if _, ok := repo.Find("C"); ok || len(repo.List()) != 2 {
		t.Fatalf("expected C dropped, got %+v", repo.List())
	}

	// existing players still update at capacity
	if err := repo.Upsert(ctx, "A", domain.Hard, 9); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if rec, _ := repo.Find("A"); rec.Scores != [3]int{1, -1, 9} {
		t.Fatalf("unexpected scores %+v", rec.Scores)
	}
}

func TestUpsertRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	repo := app.NewPlayerRepository(memory.NewPlayerStore(), 10)
	repo.Load(ctx)

	if err := repo.Upsert(ctx, "  ", domain.Easy, 1); !errors.Is(err, domain.ErrInvalidPlayerName) {
		t.Fatalf("expected invalid name, got %v", err)
	}
	if err := repo.Upsert(ctx, "Bob", domain.Difficulty(3), 1); !errors.Is(err, domain.ErrInvalidDifficulty) {
		t.Fatalf("expected invalid difficulty, got %v", err)
	}
}

func TestPlayerLoadRecoversFromCorruptStore(t *testing.T) {
	rec := domain.NewPlayerRecord("Alice")
	repo := app.NewPlayerRepository(corruptPlayerStore{partial: []domain.PlayerRecord{rec}}, 10)
	repo.Load(context.Background())
	if got := repo.List(); len(got) != 1 || got[0] != rec {
		t.Fatalf("expected partial recovery, got %+v", got)
	}
}

type corruptPlayerStore struct {
	partial []domain.PlayerRecord
}

func (s corruptPlayerStore) LoadPlayers(context.Context) ([]domain.PlayerRecord, error) {
	return s.partial, domain.ErrStorageCorrupt
}

func (s corruptPlayerStore) SavePlayers(context.Context, []domain.PlayerRecord) error {
	return nil
}
