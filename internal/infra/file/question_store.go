package file

import (
	"context"
	"fmt"

	"quizmaster/internal/domain"
)

// QuestionStore persists the question bank to a single binary file.
type QuestionStore struct {
	path     string
	capacity int
}

func NewQuestionStore(path string, capacity int) *QuestionStore {
	return &QuestionStore{path: path, capacity: capacity}
}

func (s *QuestionStore) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	return decodeRecords(data, QuestionRecordSize, s.capacity, decodeQuestion)
}

func (s *QuestionStore) SaveQuestions(_ context.Context, questions []domain.Question) error {
	if err := writeFileAtomic(s.path, encodeQuestions(questions)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
