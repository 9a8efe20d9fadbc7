package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"quizmaster/internal/app"
	"quizmaster/internal/domain"
)

// NewAdminCmd groups the password-protected question bank commands.
func NewAdminCmd(configPath *string) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the question bank",
	}
	cmd.PersistentFlags().StringVar(&password, "password", os.Getenv("QUIZ_ADMIN_PASSWORD"), "admin password")

	// withService loads the bank and authenticates before running fn.
	withService := func(fn func(ctx context.Context, service *app.QuizService, out io.Writer, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			service, closeFn, err := newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()
			out := cmd.OutOrStdout()
			if err := service.Authenticate(password); err != nil {
				return report(out, err)
			}
			return fn(cmd.Context(), service, out, args)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every question",
		Args:  cobra.NoArgs,
		RunE: withService(func(_ context.Context, service *app.QuizService, out io.Writer, _ []string) error {
			listQuestions(out, service.ListQuestions())
			return nil
		}),
	})

	var add questionFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a question",
		Args:  cobra.NoArgs,
		RunE: withService(func(ctx context.Context, service *app.QuizService, out io.Writer, _ []string) error {
			q, err := add.question()
			if err != nil {
				return report(out, err)
			}
			if err := service.AddQuestion(ctx, q); err != nil {
				return report(out, err)
			}
			fmt.Fprintf(out, "Added question %d.\n", service.QuestionCount())
			return nil
		}),
	}
	add.register(addCmd)
	cmd.AddCommand(addCmd)

	var edit questionFlags
	editCmd := &cobra.Command{
		Use:   "edit NUMBER",
		Short: "Change fields of one question; unset flags are left alone",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(ctx context.Context, service *app.QuizService, out io.Writer, args []string) error {
			index, err := questionIndex(args[0])
			if err != nil {
				return report(out, err)
			}
			d, err := edit.difficulty()
			if err != nil {
				return report(out, err)
			}
			err = service.EditQuestion(ctx, index, func(q *domain.Question) {
				if edit.text != "" {
					q.Text = edit.text
				}
				for i, option := range edit.options {
					if i < domain.OptionCount && option != "" {
						q.Options[i] = option
					}
				}
				if edit.correct > 0 {
					q.Correct = edit.correct - 1
				}
				if edit.level != "" {
					q.Difficulty = d
				}
			})
			if err != nil {
				return report(out, err)
			}
			fmt.Fprintf(out, "Updated question %d.\n", index+1)
			return nil
		}),
	}
	edit.register(editCmd)
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NUMBER",
		Short: "Remove a question",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(ctx context.Context, service *app.QuizService, out io.Writer, args []string) error {
			index, err := questionIndex(args[0])
			if err != nil {
				return report(out, err)
			}
			if err := service.DeleteQuestion(ctx, index); err != nil {
				return report(out, err)
			}
			fmt.Fprintf(out, "Deleted question %d.\n", index+1)
			return nil
		}),
	})
	return cmd
}

type questionFlags struct {
	text    string
	options []string
	correct int
	level   string
}

func (f *questionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "question text")
	cmd.Flags().StringArrayVar(&f.options, "option", nil, "answer option, repeat four times in order")
	cmd.Flags().IntVar(&f.correct, "correct", 0, "number of the correct option (1-4)")
	cmd.Flags().StringVar(&f.level, "difficulty", "", "easy, medium or hard")
}

func (f *questionFlags) difficulty() (domain.Difficulty, error) {
	if f.level == "" {
		return domain.Easy, nil
	}
	return domain.ParseDifficulty(f.level)
}

func (f *questionFlags) question() (domain.Question, error) {
	if len(f.options) != domain.OptionCount {
		return domain.Question{}, fmt.Errorf("%w: need exactly %d options, got %d", domain.ErrInvalidQuestion, domain.OptionCount, len(f.options))
	}
	if f.level == "" {
		return domain.Question{}, fmt.Errorf("%w: difficulty is required", domain.ErrInvalidQuestion)
	}
	d, err := f.difficulty()
	if err != nil {
		return domain.Question{}, err
	}
	q := domain.Question{Text: f.text, Correct: f.correct - 1, Difficulty: d}
	copy(q.Options[:], f.options)
	return q, nil
}

// questionIndex converts the 1-based number shown by list.
func questionIndex(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, domain.ErrIndexOutOfRange
	}
	return n - 1, nil
}

func listQuestions(out io.Writer, questions []domain.Question) {
	if len(questions) == 0 {
		fmt.Fprintln(out, "No questions.")
		return
	}
	for i, q := range questions {
		fmt.Fprintf(out, "%3d. [%s] %s\n", i+1, q.Difficulty, q.Text)
		for j, option := range q.Options {
			marker := " "
			if j == q.Correct {
				marker = "*"
			}
			fmt.Fprintf(out, "      %s%d) %s\n", marker, j+1, option)
		}
	}
}
