package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageAbsent means the backing store holds no data yet.
	ErrStorageAbsent = errors.New("storage absent")
	// ErrStorageCorrupt means the backing store could only be partially read.
	ErrStorageCorrupt = errors.New("storage corrupt")
	// ErrCapacityExceeded is returned when a collection is at its configured maximum.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrIndexOutOfRange indicates a question position that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInsufficientQuestions indicates a difficulty has too few questions to start a session.
	ErrInsufficientQuestions = errors.New("insufficient questions")
	// ErrAuthenticationFailed is returned on an administrator password mismatch.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrInvalidQuestion   = errors.New("invalid question")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidPlayerName = errors.New("invalid player name")

	// ErrSessionNotFound is returned for unknown or already discarded session handles.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionAborted is returned when the quit signal discarded a session.
	ErrSessionAborted     = errors.New("quiz session aborted")
	ErrSessionComplete    = errors.New("quiz session already complete")
	ErrSessionNotComplete = errors.New("quiz session not complete")
	ErrInvalidOption      = errors.New("option out of range")
	ErrNoOptionSelected   = errors.New("no option selected")
	// ErrAnswerPending means the current question is scored and waits for an advance.
	ErrAnswerPending = errors.New("answer already scored")
	// ErrQuestionOpen means an advance was requested before the current question was scored.
	ErrQuestionOpen = errors.New("current question not yet scored")
)

// InsufficientQuestionsError carries the counts behind ErrInsufficientQuestions.
type InsufficientQuestionsError struct {
	Difficulty Difficulty
	Available  int
	Required   int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("not enough questions (%d/%d) for %s", e.Available, e.Required, e.Difficulty)
}

func (e *InsufficientQuestionsError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}
