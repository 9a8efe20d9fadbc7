package app

import (
	"math"

	"quizmaster/internal/domain"
)

const (
	PointsCorrect = 5
	PointsWrong   = -1
)

// Award returns the score delta for a committed answer.
func Award(correct bool) int {
	if correct {
		return PointsCorrect
	}
	return PointsWrong
}

// Percentage expresses score against the maximum for played questions, rounded to one decimal.
func Percentage(score, played int) float64 {
	if played <= 0 {
		return 0
	}
	pct := float64(score) / float64(played*PointsCorrect) * 100
	return math.Round(pct*10) / 10
}

// BuildResult aggregates a finished run.
func BuildResult(player string, d domain.Difficulty, score, played int) domain.SessionResult {
	return domain.SessionResult{
		Player:             player,
		Difficulty:         d,
		Score:              score,
		QuestionsPlayed:    played,
		Percentage:         Percentage(score, played),
		ScoreIsNonNegative: score >= 0,
	}
}
