package app

import (
	"sync"
	"time"

	"quizmaster/internal/domain"
)

// Session is one timed run through a shuffled pool of questions. It holds copies of the
// questions, so later edits to the bank never reach a running session.
type Session struct {
	handle       string
	player       string
	difficulty   domain.Difficulty
	questionTime time.Duration
	now          func() time.Time

	mu       sync.Mutex
	pool     []domain.Question
	index    int
	selected int
	deadline time.Time
	state    domain.SessionState
	timedOut bool
	score    int
}

// NewSession starts the first question immediately using the wall clock.
func NewSession(handle, player string, d domain.Difficulty, pool []domain.Question, questionTime time.Duration) *Session {
	return NewSessionWithClock(handle, player, d, pool, questionTime, time.Now)
}

// NewSessionWithClock allows deterministic deadlines in tests.
func NewSessionWithClock(handle, player string, d domain.Difficulty, pool []domain.Question, questionTime time.Duration, now func() time.Time) *Session {
	owned := make([]domain.Question, len(pool))
	copy(owned, pool)
	s := &Session{
		handle:       handle,
		player:       player,
		difficulty:   d,
		questionTime: questionTime,
		now:          now,
		pool:         owned,
	}
	if len(owned) == 0 {
		s.state = domain.StateComplete
		return s
	}
	s.armLocked()
	return s
}

func (s *Session) Handle() string                { return s.handle }
func (s *Session) Player() string                { return s.player }
func (s *Session) Difficulty() domain.Difficulty { return s.difficulty }

// View reports the current frame, scoring the question as unanswered if its deadline passed.
func (s *Session) View() domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()
	return s.viewLocked()
}

// Select tentatively picks option i; it can be changed freely until submit.
func (s *Session) Select(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		return err
	}
	if i < 0 || i >= domain.OptionCount {
		return domain.ErrInvalidOption
	}
	s.selected = i
	return nil
}

// Submit commits the selected option and scores it.
func (s *Session) Submit() (domain.AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acceptingLocked(); err != nil {
		return domain.AnswerOutcome{}, err
	}
	if s.selected == domain.NoOption {
		return domain.AnswerOutcome{}, domain.ErrNoOptionSelected
	}

	q := s.pool[s.index]
	correct := s.selected == q.Correct
	awarded := Award(correct)
	s.score += awarded
	s.state = domain.StateScored
	return domain.AnswerOutcome{
		Correct:       correct,
		Awarded:       awarded,
		CorrectOption: q.Correct,
		RunningScore:  s.score,
	}, nil
}

// Next leaves a scored question: it arms the following one or completes the session.
func (s *Session) Next() (domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()
	switch s.state {
	case domain.StateComplete:
		return s.state, domain.ErrSessionComplete
	case domain.StateSelecting:
		return s.state, domain.ErrQuestionOpen
	}

	s.index++
	if s.index >= len(s.pool) {
		s.state = domain.StateComplete
		return s.state, nil
	}
	s.armLocked()
	return s.state, nil
}

func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.StateComplete
}

// Result is available once every question has been played.
func (s *Session) Result() (domain.SessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateComplete {
		return domain.SessionResult{}, domain.ErrSessionNotComplete
	}
	return BuildResult(s.player, s.difficulty, s.score, len(s.pool)), nil
}

func (s *Session) armLocked() {
	s.state = domain.StateSelecting
	s.selected = domain.NoOption
	s.timedOut = false
	s.deadline = s.now().Add(s.questionTime)
}

// expireLocked moves an open question past its deadline to scored, without a score change.
func (s *Session) expireLocked() {
	if s.state != domain.StateSelecting {
		return
	}
	if s.now().Before(s.deadline) {
		return
	}
	s.state = domain.StateScored
	s.timedOut = true
}

func (s *Session) acceptingLocked() error {
	s.expireLocked()
	switch s.state {
	case domain.StateComplete:
		return domain.ErrSessionComplete
	case domain.StateScored:
		return domain.ErrAnswerPending
	}
	return nil
}

func (s *Session) viewLocked() domain.SessionView {
	view := domain.SessionView{
		Handle:        s.handle,
		State:         s.state,
		Total:         len(s.pool),
		Selected:      domain.NoOption,
		CorrectOption: domain.NoOption,
		RunningScore:  s.score,
	}
	if s.state == domain.StateComplete {
		view.Number = len(s.pool)
		return view
	}

	q := s.pool[s.index]
	view.Number = s.index + 1
	view.Question = q.Text
	view.Options = q.Options
	view.Selected = s.selected
	view.TimedOut = s.timedOut
	if s.state == domain.StateScored {
		view.Scored = true
		view.CorrectOption = q.Correct
		return view
	}
	view.SecondsRemaining = secondsUntil(s.deadline, s.now())
	return view
}

// secondsUntil rounds the remaining time up so a fresh question shows the full allowance.
func secondsUntil(deadline, now time.Time) int {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}
