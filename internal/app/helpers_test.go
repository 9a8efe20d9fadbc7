package app_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"quizmaster/internal/app"
	"quizmaster/internal/domain"
	"quizmaster/internal/infra/memory"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// bank builds n questions of difficulty d whose correct option cycles through 0..3.
func bank(d domain.Difficulty, n int) []domain.Question {
	out := make([]domain.Question, n)
	for i := range out {
		out[i] = domain.Question{
			Text:       fmt.Sprintf("%s question %d", d, i),
			Options:    [4]string{"a", "b", "c", "d"},
			Correct:    i % domain.OptionCount,
			Difficulty: d,
		}
	}
	return out
}

var errStoreDown = errors.New("store down")

// flakyQuestionStore fails saves while broken is set.
type flakyQuestionStore struct {
	*memory.QuestionStore
	broken bool
}

func (s *flakyQuestionStore) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	if s.broken {
		return errStoreDown
	}
	return s.QuestionStore.SaveQuestions(ctx, questions)
}

type testEnv struct {
	service   *app.QuizService
	questions *app.QuestionRepository
	players   *app.PlayerRepository
	playerDB  *memory.PlayerStore
	sessions  *memory.SessionStore
	clock     *fakeClock
}

func newTestEnv(questions ...domain.Question) *testEnv {
	ctx := context.Background()
	questionRepo := app.NewQuestionRepository(memory.NewQuestionStore(questions...), 100)
	if err := questionRepo.Load(ctx); err != nil {
		panic(err)
	}
	playerDB := memory.NewPlayerStore()
	playerRepo := app.NewPlayerRepository(playerDB, 100)
	playerRepo.Load(ctx)

	clock := newFakeClock()
	sessions := memory.NewSessionStore()
	service := app.NewQuizService(
		questionRepo,
		playerRepo,
		sessions,
		app.NewRandomizer(rand.New(rand.NewSource(7))),
		app.DefaultLimits(),
	).WithClock(clock.Now)

	return &testEnv{
		service:   service,
		questions: questionRepo,
		players:   playerRepo,
		playerDB:  playerDB,
		sessions:  sessions,
		clock:     clock,
	}
}
