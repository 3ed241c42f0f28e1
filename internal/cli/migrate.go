package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wildlog/wildlog_api/internal/database"
	"github.com/wildlog/wildlog_api/internal/store"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(*cobra.Command, []string) error {
				return runMigrations(true)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: func(*cobra.Command, []string) error {
				return runMigrations(false)
			},
		},
	)

	return migrateCmd
}

func runMigrations(up bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger = logger.WithCLITag()

	st, err := store.NewPGStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	if up {
		if err := database.RunMigrations(st.Conn(), cfg); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("migrations applied")
		return nil
	}

	if err := database.DownMigrations(st.Conn(), cfg); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	logger.Info("migrations rolled back")
	return nil
}
