package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wildlog/wildlog_api/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var (
		dir    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate the species, badge and level tables and print a summary",
		Long: `Loads the catalog from --dir, or the tables built into the binary when no
directory is given, and prints what it contains. Unknown keys and unusable
badges are reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := catalog.Load(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := catalog.Summarize(loaded.Catalog).Write(out); err != nil {
				return err
			}
			for _, warning := range loaded.Warnings {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			if strict && len(loaded.Warnings) > 0 {
				return fmt.Errorf("catalog has %d warnings", len(loaded.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "catalog directory (defaults to the built-in tables)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the catalog has warnings")

	return cmd
}
