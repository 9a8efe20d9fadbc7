package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quizmaster/internal/app"
	"quizmaster/internal/domain"
	"quizmaster/internal/infra/memory"
)

func newMemoryService(t *testing.T, questions ...domain.Question) *app.QuizService {
	t.Helper()
	ctx := context.Background()
	repo := app.NewQuestionRepository(memory.NewQuestionStore(questions...), 100)
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("load questions: %v", err)
	}
	players := app.NewPlayerRepository(memory.NewPlayerStore(), 100)
	players.Load(ctx)
	return app.NewQuizService(repo, players, memory.NewSessionStore(), app.NewTimeSeededRandomizer(), app.DefaultLimits())
}

func easyQuestions(n int) []domain.Question {
	out := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Question{
			Text:       fmt.Sprintf("Easy %d", i),
			Options:    [domain.OptionCount]string{"right", "w1", "w2", "w3"},
			Difficulty: domain.Easy,
		})
	}
	return out
}

func playInput(t *testing.T, service *app.QuizService, input string) string {
	t.Helper()
	var out bytes.Buffer
	ctx := context.Background()
	term := newTerminal(ctx, strings.NewReader(input), &out, 5*time.Millisecond)
	defer term.close()
	err := term.play(ctx, service, "", "")
	var shown userError
	if err != nil && !errors.As(err, &shown) {
		t.Fatalf("play: %v", err)
	}
	return out.String()
}

func TestTerminalPlaysToCompletion(t *testing.T) {
	service := newMemoryService(t, easyQuestions(10)...)

	input := "Alice\neasy\n" + strings.Repeat("2\n1\ns\n", 10)
	out := playInput(t, service, input)

	for _, want := range []string{"Question 1/10", "Question 10/10", "Correct! +5", "Score:      50", "Percentage: 100.0%", "Good score!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	history := service.ListPlayerHistory()
	if len(history) != 1 || history[0].Scores[domain.Easy] != 50 {
		t.Fatalf("expected recorded score 50, got %+v", history)
	}
}

func TestTerminalWrongAnswersGiveBadScore(t *testing.T) {
	service := newMemoryService(t, easyQuestions(10)...)

	out := playInput(t, service, "Bob\n0\n"+strings.Repeat("s\n4\ns\n", 10))

	for _, want := range []string{"Select an option before submitting.", "Wrong. The answer was 1.", "Score:      -10", "Bad score"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalQuitRecordsNothing(t *testing.T) {
	service := newMemoryService(t, easyQuestions(10)...)

	out := playInput(t, service, "Carol\neasy\n1\ns\nq\n")

	if !strings.Contains(out, "Quiz abandoned") {
		t.Fatalf("expected abandon message:\n%s", out)
	}
	if len(service.ListPlayerHistory()) != 0 {
		t.Fatalf("quit must not record history")
	}
}

func TestTerminalEndOfInputQuits(t *testing.T) {
	service := newMemoryService(t, easyQuestions(10)...)

	out := playInput(t, service, "Dan\neasy\n1\n")

	if !strings.Contains(out, "Quiz abandoned") {
		t.Fatalf("expected abandon message:\n%s", out)
	}
}

func TestTerminalReportsMissingQuestions(t *testing.T) {
	service := newMemoryService(t, easyQuestions(3)...)

	out := playInput(t, service, "Eve\neasy\n")

	if !strings.Contains(out, "Not enough Easy questions: 3 available, 10 required.") {
		t.Fatalf("expected insufficient message:\n%s", out)
	}
}

func TestTerminalRejectsUnknownDifficulty(t *testing.T) {
	service := newMemoryService(t, easyQuestions(10)...)

	out := playInput(t, service, "Eve\nexpert\n")

	if !strings.Contains(out, "Difficulty must be easy, medium or hard.") {
		t.Fatalf("expected difficulty message:\n%s", out)
	}
}

func TestPrintHistoryMarksUnattempted(t *testing.T) {
	p := domain.NewPlayerRecord("Alice")
	p.Scores[domain.Medium] = 12
	var out bytes.Buffer
	printHistory(&out, []domain.PlayerRecord{p})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out.String())
	}
	if fields := strings.Fields(lines[1]); strings.Join(fields, " ") != "Alice - 12 -" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("storage:\n  driver: file\n  dir: %s\nadmin:\n  password: secret\n", dir)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAdminCommandsAgainstFileStorage(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "", "--config", cfg, "admin", "list", "--password", "wrong")
	if err == nil || !strings.Contains(out, "Incorrect admin password.") {
		t.Fatalf("expected authentication failure, got err=%v out=%s", err, out)
	}

	out, err = run(t, "", "--config", cfg, "admin", "list", "--password", "secret")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, " 30. [Hard]") {
		t.Fatalf("expected the starter bank to be seeded:\n%s", out)
	}

	out, err = run(t, "", "--config", cfg, "admin", "add", "--password", "secret",
		"--text", "Capital of Peru?", "--option", "Lima", "--option", "Quito", "--option", "Cusco", "--option", "La Paz",
		"--correct", "1", "--difficulty", "medium")
	if err != nil || !strings.Contains(out, "Added question 31.") {
		t.Fatalf("add: err=%v out=%s", err, out)
	}

	out, err = run(t, "", "--config", cfg, "admin", "edit", "31", "--password", "secret", "--text", "Capital city of Peru?", "--correct", "1")
	if err != nil || !strings.Contains(out, "Updated question 31.") {
		t.Fatalf("edit: err=%v out=%s", err, out)
	}

	out, err = run(t, "", "--config", cfg, "admin", "list", "--password", "secret")
	if err != nil || !strings.Contains(out, " 31. [Medium] Capital city of Peru?") || !strings.Contains(out, "*1) Lima") {
		t.Fatalf("expected edited question listed: err=%v\n%s", err, out)
	}

	out, err = run(t, "", "--config", cfg, "admin", "edit", "99", "--password", "secret", "--text", "nope")
	if err == nil || !strings.Contains(out, "No question with that number.") {
		t.Fatalf("expected index error, got err=%v out=%s", err, out)
	}

	out, err = run(t, "", "--config", cfg, "admin", "delete", "31", "--password", "secret")
	if err != nil || !strings.Contains(out, "Deleted question 31.") {
		t.Fatalf("delete: err=%v out=%s", err, out)
	}
}

func TestPlayThenHistoryAgainstFileStorage(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, strings.Repeat("1\ns\n", 10), "--config", cfg, "play", "--name", "Alice", "--difficulty", "easy")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Easy quiz complete") {
		t.Fatalf("expected a completed quiz:\n%s", out)
	}

	out, err = run(t, "", "--config", cfg, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "PLAYER") {
		t.Fatalf("expected Alice in history:\n%s", out)
	}
}
