package cli

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	pgstore "quizmaster/internal/infra/postgres"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := pgstore.Migrate(ctx, cfg.Postgres.URL); err != nil {
		return err
	}
	log.Printf("migrations applied")
	return nil
}
