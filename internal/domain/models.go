package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Bounds inherited from the legacy fixed-size buffers (one byte is reserved for the NUL).
const (
	OptionCount     = 4
	DifficultyCount = 3
	MaxQuestionText = 255
	MaxOptionText   = 127
	MaxPlayerName   = 49

	// UnattemptedScore marks a difficulty the player has never completed.
	UnattemptedScore = -1
)

// Difficulty partitions the question bank; a session plays exactly one.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in storage order.
var Difficulties = [DifficultyCount]Difficulty{Easy, Medium, Hard}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty accepts a name (case-insensitive) or the numeric tag.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy", "0":
		return Easy, nil
	case "medium", "1":
		return Medium, nil
	case "hard", "2":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, raw)
}

// Question models an MCQ question with exactly four options and one correct answer.
type Question struct {
	Text       string              `json:"text"`
	Options    [OptionCount]string `json:"options"`
	Correct    int                 `json:"correct"`
	Difficulty Difficulty          `json:"difficulty"`
}

// Normalize truncates text fields to their storage bounds.
func (q *Question) Normalize() {
	q.Text = Truncate(q.Text, MaxQuestionText)
	for i := range q.Options {
		q.Options[i] = Truncate(q.Options[i], MaxOptionText)
	}
}

// Validate reports whether the question can be stored.
func (q Question) Validate() error {
	if q.Correct < 0 || q.Correct >= OptionCount {
		return fmt.Errorf("%w: correct option %d out of range", ErrInvalidQuestion, q.Correct)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("%w: difficulty %d", ErrInvalidQuestion, int(q.Difficulty))
	}
	return nil
}

// PlayerRecord holds the last completed score per difficulty for one player.
type PlayerRecord struct {
	Name   string               `json:"name"`
	Scores [DifficultyCount]int `json:"scores"`
}

// NewPlayerRecord returns a record with every difficulty unattempted.
func NewPlayerRecord(name string) PlayerRecord {
	p := PlayerRecord{Name: Truncate(name, MaxPlayerName)}
	for i := range p.Scores {
		p.Scores[i] = UnattemptedScore
	}
	return p
}

func (p PlayerRecord) Attempted(d Difficulty) bool {
	return d.Valid() && p.Scores[d] != UnattemptedScore
}

// Truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
