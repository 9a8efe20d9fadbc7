package memory

import (
	"context"
	"errors"
	"testing"

	"quizmaster/internal/domain"
)

func TestQuestionStoreAbsentUntilSaved(t *testing.T) {
	store := NewQuestionStore()
	if _, err := store.LoadQuestions(context.Background()); !errors.Is(err, domain.ErrStorageAbsent) {
		t.Fatalf("expected absent, got %v", err)
	}

	q := domain.Question{Text: "What is 2 + 2?", Options: [4]string{"3", "4", "5", "6"}, Correct: 1}
	if err := store.SaveQuestions(context.Background(), []domain.Question{q}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadQuestions(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0] != q {
		t.Fatalf("unexpected questions %+v", got)
	}

	got[0].Text = "mutated"
	again, _ := store.LoadQuestions(context.Background())
	if again[0].Text != q.Text {
		t.Fatalf("store leaked its backing slice")
	}
}

func TestPlayerStoreRoundTrip(t *testing.T) {
	store := NewPlayerStore()
	if _, err := store.LoadPlayers(context.Background()); !errors.Is(err, domain.ErrStorageAbsent) {
		t.Fatalf("expected absent, got %v", err)
	}
	rec := domain.NewPlayerRecord("Alice")
	rec.Scores[domain.Medium] = 30
	if err := store.SavePlayers(context.Background(), []domain.PlayerRecord{rec}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadPlayers(context.Background())
	if err != nil || len(got) != 1 || got[0] != rec {
		t.Fatalf("unexpected players %+v err=%v", got, err)
	}
}
