package cli

import (
	"errors"
	"fmt"
	"io"

	"quizmaster/internal/domain"
)

// message maps domain errors to the text shown to a user.
func message(err error) string {
	var short *domain.InsufficientQuestionsError
	switch {
	case errors.As(err, &short):
		return fmt.Sprintf("Not enough %s questions: %d available, %d required.", short.Difficulty, short.Available, short.Required)
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return "Incorrect admin password."
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "The question bank is full."
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "No question with that number."
	case errors.Is(err, domain.ErrInvalidQuestion):
		return fmt.Sprintf("Invalid question: %v", err)
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Difficulty must be easy, medium or hard."
	case errors.Is(err, domain.ErrInvalidPlayerName):
		return "Please enter a player name."
	case errors.Is(err, domain.ErrNoOptionSelected):
		return "Select an option before submitting."
	case errors.Is(err, domain.ErrInvalidOption):
		return fmt.Sprintf("Options are numbered 1-%d.", domain.OptionCount)
	case errors.Is(err, domain.ErrAnswerPending):
		return "This question has already been answered."
	}
	return err.Error()
}

// userError is returned once the message has been shown, so the process exits non-zero
// without cobra printing it a second time.
type userError struct{ err error }

func (e userError) Error() string { return e.err.Error() }
func (e userError) Unwrap() error { return e.err }

func report(out io.Writer, err error) error {
	fmt.Fprintln(out, message(err))
	return userError{err}
}
