package memory

import (
	"context"
	"sync"

	"quizmaster/internal/domain"
)

// QuestionStore keeps the question bank in process memory (useful for tests/demos).
type QuestionStore struct {
	mu        sync.RWMutex
	saved     bool
	questions []domain.Question
	saves     int
}

func NewQuestionStore(initial ...domain.Question) *QuestionStore {
	s := &QuestionStore{}
	if len(initial) > 0 {
		s.saved = true
		s.questions = append([]domain.Question(nil), initial...)
	}
	return s
}

func (s *QuestionStore) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return nil, domain.ErrStorageAbsent
	}
	return append([]domain.Question(nil), s.questions...), nil
}

func (s *QuestionStore) SaveQuestions(_ context.Context, questions []domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = true
	s.saves++
	s.questions = append([]domain.Question(nil), questions...)
	return nil
}

// Saves reports how many times the bank was written.
func (s *QuestionStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
