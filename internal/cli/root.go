// Package cli implements the wildlog command line using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/logging"
)

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "wildlog",
		Short: "WildLog progression service",
		Long: `WildLog keeps species collections, sighting streaks, badges and levels
for wildlife spotters and their swarms.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newCatalogCmd())

	return root
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *logging.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}
