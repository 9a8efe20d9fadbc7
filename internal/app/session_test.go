package app_test

import (
	"errors"
	"testing"
	"time"

	"quizmaster/internal/app"
	"quizmaster/internal/domain"
)

func newTestSession(clock *fakeClock, n int) *app.Session {
	return app.NewSessionWithClock("h1", "Alice", domain.Easy, bank(domain.Easy, n), 30*time.Second, clock.Now)
}

func TestSessionSelectIsTentativeUntilSubmit(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(clock, 2)

	view := s.View()
	if view.State != domain.StateSelecting || view.Number != 1 || view.Total != 2 {
		t.Fatalf("unexpected first view %+v", view)
	}
	if view.SecondsRemaining != 30 || view.Selected != domain.NoOption || view.CorrectOption != domain.NoOption {
		t.Fatalf("unexpected initial frame %+v", view)
	}

	if _, err := s.Submit(); !errors.Is(err, domain.ErrNoOptionSelected) {
		t.Fatalf("expected no option selected, got %v", err)
	}
	if err := s.Select(4); !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected invalid option, got %v", err)
	}
	_ = s.Select(3)
	_ = s.Select(0) // question 0 has correct option 0
	if s.View().Selected != 0 {
		t.Fatalf("selection not overwritten")
	}

	out, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct || out.Awarded != 5 || out.RunningScore != 5 || out.CorrectOption != 0 {
		t.Fatalf("unexpected outcome %+v", out)
	}

	// a scored question accepts no more input
	if err := s.Select(1); !errors.Is(err, domain.ErrAnswerPending) {
		t.Fatalf("expected pending, got %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, domain.ErrAnswerPending) {
		t.Fatalf("expected pending, got %v", err)
	}
	if view := s.View(); !view.Scored || view.CorrectOption != 0 {
		t.Fatalf("scored view should reveal the answer: %+v", view)
	}
}

func TestSessionWrongAnswerCostsOnePoint(t *testing.T) {
	s := newTestSession(newFakeClock(), 1)
	_ = s.Select(2)
	out, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct || out.Awarded != -1 || out.RunningScore != -1 {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestSessionDeadlineScoresUnanswered(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(clock, 2)
	_ = s.Select(0)

	clock.Advance(29*time.Second + 500*time.Millisecond)
	if got := s.View().SecondsRemaining; got != 1 {
		t.Fatalf("seconds remaining = %d, want 1", got)
	}

	clock.Advance(500 * time.Millisecond)
	view := s.View()
	if !view.Scored || !view.TimedOut || view.RunningScore != 0 {
		t.Fatalf("expected timeout without penalty, got %+v", view)
	}
	if view.CorrectOption != 0 || view.SecondsRemaining != 0 {
		t.Fatalf("timeout should reveal the answer: %+v", view)
	}
	if _, err := s.Submit(); !errors.Is(err, domain.ErrAnswerPending) {
		t.Fatalf("late submit should be refused, got %v", err)
	}
}

func TestSessionLateSubmitWithoutPollIsNotScored(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(clock, 1)
	_ = s.Select(0)
	clock.Advance(31 * time.Second)

	if _, err := s.Submit(); !errors.Is(err, domain.ErrAnswerPending) {
		t.Fatalf("expected pending after deadline, got %v", err)
	}
	if s.View().RunningScore != 0 {
		t.Fatalf("late answer changed the score")
	}
}

func TestSessionNextArmsFreshDeadlineThenCompletes(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(clock, 2)

	if _, err := s.Next(); !errors.Is(err, domain.ErrQuestionOpen) {
		t.Fatalf("expected open question, got %v", err)
	}

	_ = s.Select(0)
	_, _ = s.Submit()
	clock.Advance(10 * time.Second)
	state, err := s.Next()
	if err != nil || state != domain.StateSelecting {
		t.Fatalf("next: state=%s err=%v", state, err)
	}
	view := s.View()
	if view.Number != 2 || view.SecondsRemaining != 30 || view.Selected != domain.NoOption {
		t.Fatalf("second question not freshly armed: %+v", view)
	}
	if _, err := s.Result(); !errors.Is(err, domain.ErrSessionNotComplete) {
		t.Fatalf("expected not complete, got %v", err)
	}

	clock.Advance(30 * time.Second)
	state, err = s.Next()
	if err != nil || state != domain.StateComplete || !s.Complete() {
		t.Fatalf("expected complete, state=%s err=%v", state, err)
	}
	if _, err := s.Next(); !errors.Is(err, domain.ErrSessionComplete) {
		t.Fatalf("expected complete error, got %v", err)
	}
	if err := s.Select(0); !errors.Is(err, domain.ErrSessionComplete) {
		t.Fatalf("expected complete error, got %v", err)
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Score != 5 || res.QuestionsPlayed != 2 || res.Percentage != 50.0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSessionHoldsCopiesOfQuestions(t *testing.T) {
	pool := bank(domain.Easy, 1)
	s := app.NewSessionWithClock("h", "Alice", domain.Easy, pool, time.Minute, newFakeClock().Now)
	pool[0].Text = "edited elsewhere"
	if s.View().Question == "edited elsewhere" {
		t.Fatalf("session observed an edit to the source slice")
	}
}
