package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"quizmaster/internal/domain"
)

// Limits bounds a single session.
type Limits struct {
	QuestionTime        time.Duration
	QuestionsPerSession int
	MinQuestions        int
}

// DefaultLimits matches the classic rules: 10 questions of 30 seconds each.
func DefaultLimits() Limits {
	return Limits{
		QuestionTime:        30 * time.Second,
		QuestionsPerSession: 10,
		MinQuestions:        10,
	}
}

// QuizService is the single entry point front-ends use: question administration, timed
// sessions and player history. A cancelled context is treated as the quit signal.
type QuizService struct {
	questions  *QuestionRepository
	players    *PlayerRepository
	sessions   SessionRepository
	randomizer *Randomizer
	limits     Limits
	adminHash  []byte
	clock      func() time.Time
	newHandle  func() string
}

func NewQuizService(questions *QuestionRepository, players *PlayerRepository, sessions SessionRepository, randomizer *Randomizer, limits Limits) *QuizService {
	return &QuizService{
		questions:  questions,
		players:    players,
		sessions:   sessions,
		randomizer: randomizer,
		limits:     limits,
		clock:      time.Now,
		newHandle:  uuid.NewString,
	}
}

// WithClock is test-only for deterministic deadlines.
func (s *QuizService) WithClock(now func() time.Time) *QuizService {
	s.clock = now
	return s
}

// WithAdminPasswordHash sets the bcrypt hash Authenticate compares against.
func (s *QuizService) WithAdminPasswordHash(hash string) *QuizService {
	s.adminHash = []byte(hash)
	return s
}

// HashPassword bcrypt-hashes a plaintext administrator password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Authenticate gates administrator operations.
func (s *QuizService) Authenticate(password string) error {
	if len(s.adminHash) == 0 {
		return domain.ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return domain.ErrAuthenticationFailed
	}
	return nil
}

func (s *QuizService) ListQuestions() []domain.Question {
	return s.questions.List()
}

func (s *QuizService) QuestionCount() int {
	return s.questions.Count()
}

func (s *QuizService) AddQuestion(ctx context.Context, q domain.Question) error {
	return s.questions.Append(ctx, q)
}

func (s *QuizService) EditQuestion(ctx context.Context, index int, mutate func(*domain.Question)) error {
	return s.questions.Edit(ctx, index, mutate)
}

func (s *QuizService) DeleteQuestion(ctx context.Context, index int) error {
	return s.questions.Delete(ctx, index)
}

func (s *QuizService) ListPlayerHistory() []domain.PlayerRecord {
	return s.players.List()
}

// StartSession draws a shuffled pool for d and arms the first question. It fails with
// *domain.InsufficientQuestionsError when fewer than the minimum are available.
func (s *QuizService) StartSession(ctx context.Context, d domain.Difficulty, player string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.ErrSessionAborted
	}
	if !d.Valid() {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidDifficulty, int(d))
	}
	player = domain.Truncate(strings.TrimSpace(player), domain.MaxPlayerName)
	if player == "" {
		return "", domain.ErrInvalidPlayerName
	}

	pool := s.questions.FilterByDifficulty(d)
	required := s.limits.MinQuestions
	if required < 1 {
		required = 1
	}
	if len(pool) < required {
		return "", &domain.InsufficientQuestionsError{Difficulty: d, Available: len(pool), Required: required}
	}

	s.randomizer.Shuffle(pool)
	if limit := s.limits.QuestionsPerSession; limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}

	session := NewSessionWithClock(s.newHandle(), player, d, pool, s.limits.QuestionTime, s.clock)
	s.sessions.Put(session)
	return session.Handle(), nil
}

// PollSession returns the current frame; an expired deadline is scored here.
func (s *QuizService) PollSession(ctx context.Context, handle string) (domain.SessionView, error) {
	session, err := s.live(ctx, handle)
	if err != nil {
		return domain.SessionView{}, err
	}
	return session.View(), nil
}

func (s *QuizService) SelectOption(ctx context.Context, handle string, option int) error {
	session, err := s.live(ctx, handle)
	if err != nil {
		return err
	}
	return session.Select(option)
}

func (s *QuizService) SubmitAnswer(ctx context.Context, handle string) (domain.AnswerOutcome, error) {
	session, err := s.live(ctx, handle)
	if err != nil {
		return domain.AnswerOutcome{}, err
	}
	return session.Submit()
}

// NextQuestion advances past a scored question. Reaching the end records the score in the
// player history exactly once.
func (s *QuizService) NextQuestion(ctx context.Context, handle string) (domain.SessionView, error) {
	session, err := s.live(ctx, handle)
	if err != nil {
		return domain.SessionView{}, err
	}
	state, err := session.Next()
	if err != nil {
		return domain.SessionView{}, err
	}
	if state == domain.StateComplete {
		result, err := session.Result()
		if err != nil {
			return domain.SessionView{}, err
		}
		if err := s.players.Upsert(ctx, result.Player, result.Difficulty, result.Score); err != nil {
			log.Printf("record score for %q: %v", result.Player, err)
			return session.View(), fmt.Errorf("record score: %w", err)
		}
	}
	return session.View(), nil
}

// SessionResult returns the final tally of a completed session and releases it.
func (s *QuizService) SessionResult(ctx context.Context, handle string) (domain.SessionResult, error) {
	session, err := s.live(ctx, handle)
	if err != nil {
		return domain.SessionResult{}, err
	}
	result, err := session.Result()
	if err != nil {
		return domain.SessionResult{}, err
	}
	s.sessions.Delete(handle)
	return result, nil
}

// AbortSession discards a session without scoring or persisting anything.
func (s *QuizService) AbortSession(handle string) {
	s.sessions.Delete(handle)
}

func (s *QuizService) live(ctx context.Context, handle string) (*Session, error) {
	if ctx.Err() != nil {
		s.sessions.Delete(handle)
		return nil, domain.ErrSessionAborted
	}
	session, ok := s.sessions.Get(handle)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
