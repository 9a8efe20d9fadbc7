package app

import (
	"math/rand"
	"sync"
	"time"

	"quizmaster/internal/domain"
)

// IntnSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type IntnSource interface {
	Intn(n int) int
}

// Randomizer permutes session pools. It is safe for concurrent use.
type Randomizer struct {
	mu  sync.Mutex
	src IntnSource
}

func NewRandomizer(src IntnSource) *Randomizer {
	return &Randomizer{src: src}
}

// NewTimeSeededRandomizer seeds a private source from the wall clock once.
func NewTimeSeededRandomizer() *Randomizer {
	return NewRandomizer(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Shuffle permutes questions in place (Fisher-Yates).
func (r *Randomizer) Shuffle(questions []domain.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(questions) - 1; i > 0; i-- {
		j := r.src.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
