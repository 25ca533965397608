package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"watchthis/sharing/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Create or update the shares table and its indexes, then exit.

"serve" migrates on startup too; use this command to migrate ahead of a deploy.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.Database(), log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	log.Info("Running database migrations", zap.String("driver", cfg.DatabaseDriver))
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	cmd.Printf("Migrations completed successfully (driver: %s)\n", cfg.DatabaseDriver)
	return nil
}
