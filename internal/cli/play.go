package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"quizmaster/internal/app"
	"quizmaster/internal/domain"
)

const playTick = 250 * time.Millisecond

// NewPlayCmd runs one timed quiz session on the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var name, difficulty string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			service, closeFn, err := newService(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			t := newTerminal(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), playTick)
			defer t.close()
			return t.play(ctx, service, name, difficulty)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "player name (prompted when empty)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard (prompted when empty)")
	return cmd
}

// terminal drives a session from line input. A reader goroutine only forwards lines;
// all session calls happen on the caller's goroutine.
type terminal struct {
	lines <-chan string
	out   io.Writer
	tick  time.Duration
	done  chan struct{}
}

func newTerminal(ctx context.Context, in io.Reader, out io.Writer, tick time.Duration) *terminal {
	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return &terminal{lines: lines, out: out, tick: tick, done: done}
}

func (t *terminal) close() {
	close(t.done)
}

func (t *terminal) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(t.out, label)
	select {
	case line, ok := <-t.lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

func (t *terminal) play(ctx context.Context, service *app.QuizService, name, difficulty string) error {
	var ok bool
	if name == "" {
		if name, ok = t.prompt(ctx, "Name: "); !ok {
			return nil
		}
	}
	if difficulty == "" {
		if difficulty, ok = t.prompt(ctx, "Difficulty (easy/medium/hard): "); !ok {
			return nil
		}
	}
	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return report(t.out, err)
	}

	handle, err := service.StartSession(ctx, d, name)
	if err != nil {
		return report(t.out, err)
	}

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	var drawn domain.SessionView
	lastSecs := -1
	for {
		view, err := service.PollSession(ctx, handle)
		if err != nil {
			return t.finish(err)
		}

		switch view.State {
		case domain.StateScored:
			if view.TimedOut {
				fmt.Fprintf(t.out, "\nTime's up! The answer was %d) %s\n", view.CorrectOption+1, view.Options[view.CorrectOption])
			}
			if _, err := service.NextQuestion(ctx, handle); err != nil && !errors.Is(err, domain.ErrSessionComplete) {
				if errors.Is(err, domain.ErrSessionAborted) {
					return t.finish(err)
				}
				fmt.Fprintf(t.out, "%s\n", message(err))
			}
			continue
		case domain.StateComplete:
			result, err := service.SessionResult(ctx, handle)
			if err != nil {
				return t.finish(err)
			}
			printResult(t.out, result)
			return nil
		}

		if view.Number != drawn.Number {
			drawQuestion(t.out, view)
			lastSecs = -1
		} else if view.Selected != drawn.Selected && view.Selected != domain.NoOption {
			fmt.Fprintf(t.out, "Selected %d. Press s to submit or pick another.\n", view.Selected+1)
		}
		if view.SecondsRemaining != lastSecs && (view.SecondsRemaining%10 == 0 || view.SecondsRemaining <= 5) {
			fmt.Fprintf(t.out, "  %ds left\n", view.SecondsRemaining)
		}
		lastSecs = view.SecondsRemaining
		drawn = view

		select {
		case <-ctx.Done():
			service.AbortSession(handle)
			return t.finish(domain.ErrSessionAborted)
		case line, ok := <-t.lines:
			if !ok || strings.EqualFold(line, "q") {
				service.AbortSession(handle)
				return t.finish(domain.ErrSessionAborted)
			}
			t.handleInput(ctx, service, handle, line)
		case <-ticker.C:
		}
	}
}

func (t *terminal) handleInput(ctx context.Context, service *app.QuizService, handle, line string) {
	if strings.EqualFold(line, "s") {
		outcome, err := service.SubmitAnswer(ctx, handle)
		if err != nil {
			fmt.Fprintf(t.out, "%s\n", message(err))
			return
		}
		if outcome.Correct {
			fmt.Fprintf(t.out, "Correct! +%d (score %d)\n", outcome.Awarded, outcome.RunningScore)
		} else {
			fmt.Fprintf(t.out, "Wrong. The answer was %d. %d (score %d)\n", outcome.CorrectOption+1, outcome.Awarded, outcome.RunningScore)
		}
		return
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > domain.OptionCount {
		fmt.Fprintf(t.out, "Enter 1-%d to select, s to submit, q to quit.\n", domain.OptionCount)
		return
	}
	if err := service.SelectOption(ctx, handle, n-1); err != nil {
		fmt.Fprintf(t.out, "%s\n", message(err))
	}
}

func (t *terminal) finish(err error) error {
	if errors.Is(err, domain.ErrSessionAborted) {
		fmt.Fprintln(t.out, "\nQuiz abandoned. Nothing was recorded.")
		return nil
	}
	return report(t.out, err)
}

func drawQuestion(out io.Writer, view domain.SessionView) {
	fmt.Fprintf(out, "\nQuestion %d/%d  (score %d)\n%s\n", view.Number, view.Total, view.RunningScore, view.Question)
	for i, option := range view.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, option)
	}
}

func printResult(out io.Writer, result domain.SessionResult) {
	fmt.Fprintf(out, "\n%s quiz complete\n", result.Difficulty)
	fmt.Fprintf(out, "Player:     %s\n", result.Player)
	fmt.Fprintf(out, "Score:      %d\n", result.Score)
	fmt.Fprintf(out, "Percentage: %.1f%%\n", result.Percentage)
	if result.ScoreIsNonNegative {
		fmt.Fprintln(out, "Good score!")
	} else {
		fmt.Fprintln(out, "Bad score. Keep practicing.")
	}
}
