package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
	dataDir    string
)

// Execute runs the CLI.
func Execute() error {
	err := newRootCmd().Execute()
	var shown userError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	envConfig := os.Getenv("QUIZ_CONFIG")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:           "quizmaster",
		Short:         "Timed multiple-choice quiz with an administrable question bank",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", os.Getenv("QUIZ_DATA_DIR"), "directory for the question and player files (file driver)")
	cmd.AddCommand(NewPlayCmd(&configPath))
	cmd.AddCommand(NewAdminCmd(&configPath))
	cmd.AddCommand(NewHistoryCmd(&configPath))
	cmd.AddCommand(NewServeCmd(&configPath, &port, envPort))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
