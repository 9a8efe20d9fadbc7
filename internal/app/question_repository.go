package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"quizmaster/internal/domain"
)

// QuestionRepository owns the mutable question bank. Every mutation is written through to the
// store before returning; a failed write leaves the in-memory bank unchanged.
type QuestionRepository struct {
	store        QuestionStore
	maxQuestions int
	starter      []domain.Question

	mu        sync.RWMutex
	questions []domain.Question
}

func NewQuestionRepository(store QuestionStore, maxQuestions int) *QuestionRepository {
	return &QuestionRepository{
		store:        store,
		maxQuestions: maxQuestions,
		starter:      StarterQuestions(),
	}
}

// WithStarterSet replaces the questions seeded into an empty bank.
func (r *QuestionRepository) WithStarterSet(questions []domain.Question) *QuestionRepository {
	r.starter = questions
	return r
}

// Load reads the store, recovering from absent or corrupt data, and seeds the starter set when the
// bank comes back empty. Only a failure to persist the seed is reported.
func (r *QuestionRepository) Load(ctx context.Context) error {
	questions, err := r.store.LoadQuestions(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStorageAbsent):
		questions = nil
	case errors.Is(err, domain.ErrStorageCorrupt):
		log.Printf("question store corrupt, recovered %d questions: %v", len(questions), err)
	default:
		log.Printf("question store unreadable, starting empty: %v", err)
		questions = nil
	}

	if len(questions) > r.maxQuestions {
		questions = questions[:r.maxQuestions]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = questions
	if len(r.questions) > 0 {
		return nil
	}

	seed := make([]domain.Question, len(r.starter))
	copy(seed, r.starter)
	if err := r.store.SaveQuestions(ctx, seed); err != nil {
		return fmt.Errorf("persist starter questions: %w", err)
	}
	r.questions = seed
	log.Printf("seeded %d starter questions", len(seed))
	return nil
}

// List returns a copy of the bank in stored order.
func (r *QuestionRepository) List() []domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

func (r *QuestionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}

func (r *QuestionRepository) Get(index int) (domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.questions) {
		return domain.Question{}, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	return r.questions[index], nil
}

// Append adds q at the end of the bank.
func (r *QuestionRepository) Append(ctx context.Context, q domain.Question) error {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.questions) >= r.maxQuestions {
		return fmt.Errorf("%w: bank holds %d questions", domain.ErrCapacityExceeded, r.maxQuestions)
	}

	next := make([]domain.Question, len(r.questions), len(r.questions)+1)
	copy(next, r.questions)
	next = append(next, q)
	return r.commitLocked(ctx, next)
}

// Edit applies mutate to a copy of the question at index and stores it if still valid.
func (r *QuestionRepository) Edit(ctx context.Context, index int, mutate func(*domain.Question)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.questions) {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}

	edited := r.questions[index]
	mutate(&edited)
	edited.Normalize()
	if err := edited.Validate(); err != nil {
		return err
	}

	next := make([]domain.Question, len(r.questions))
	copy(next, r.questions)
	next[index] = edited
	return r.commitLocked(ctx, next)
}

// Delete removes the question at index; later entries shift down by one.
func (r *QuestionRepository) Delete(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.questions) {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}

	next := make([]domain.Question, 0, len(r.questions)-1)
	next = append(next, r.questions[:index]...)
	next = append(next, r.questions[index+1:]...)
	return r.commitLocked(ctx, next)
}

// FilterByDifficulty returns copies of the questions tagged d, in stored order.
func (r *QuestionRepository) FilterByDifficulty(d domain.Difficulty) []domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Question
	for _, q := range r.questions {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

func (r *QuestionRepository) commitLocked(ctx context.Context, next []domain.Question) error {
	if err := r.store.SaveQuestions(ctx, next); err != nil {
		return fmt.Errorf("save questions: %w", err)
	}
	r.questions = next
	return nil
}
