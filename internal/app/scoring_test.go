package app_test

import (
	"testing"

	"quizmaster/internal/app"
	"quizmaster/internal/domain"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, played int
		want          float64
	}{
		{25, 10, 50.0},
		{50, 10, 100.0},
		{-10, 10, -20.0},
		{7, 3, 46.7},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := app.Percentage(tc.score, tc.played); got != tc.want {
			t.Fatalf("Percentage(%d, %d) = %v, want %v", tc.score, tc.played, got, tc.want)
		}
	}
}

func TestBuildResultFlagsNegativeScores(t *testing.T) {
	res := app.BuildResult("Alice", domain.Hard, -2, 10)
	if res.ScoreIsNonNegative {
		t.Fatalf("negative score flagged as non-negative")
	}
	if res.Percentage != -4.0 {
		t.Fatalf("percentage = %v", res.Percentage)
	}
	if !app.BuildResult("Alice", domain.Hard, 0, 10).ScoreIsNonNegative {
		t.Fatalf("zero should count as non-negative")
	}
}
