package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != DriverFile || cfg.Quiz.MinQuestions != 10 || cfg.Quiz.MaxQuestions != 100 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.QuestionTime() != 30*time.Second {
		t.Fatalf("question time = %v", cfg.QuestionTime())
	}
	if cfg.Admin.Password != "admin123" {
		t.Fatalf("expected default admin password")
	}
}

func TestLoadOverridesAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
storage:
  driver: redis
  dir: /var/lib/quiz
quiz:
  questionTime: 45s
  minQuestions: 5
admin:
  passwordHash: "$2a$04$abc"
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != DriverRedis || cfg.QuestionTime() != 45*time.Second || cfg.Quiz.MinQuestions != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Quiz.QuestionsPerSession != 10 || cfg.Quiz.MaxPlayers != 100 {
		t.Fatalf("defaults not kept: %+v", cfg.Quiz)
	}
	if cfg.QuestionsPath() != filepath.Join("/var/lib/quiz", "quiz_questions.dat") {
		t.Fatalf("questions path = %s", cfg.QuestionsPath())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	_ = os.WriteFile(path, []byte("quiz: [unterminated"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 5 * time.Second},
		{"bogus", 5 * time.Second},
		{"-3s", 5 * time.Second},
		{"1m", time.Minute},
	}
	for _, tc := range cases {
		if got := Duration(tc.raw, 5*time.Second); got != tc.want {
			t.Fatalf("Duration(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
