package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/workdir"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete leftover files from the working directory",
	Long: `Clean removes every regular file directly inside the working directory.
Subdirectories (such as the office profile) are kept. Files that cannot be
removed are reported; the rest are still deleted.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := workdir.Prepare(cfg.Conversion.WorkDir)
	if err != nil {
		return err
	}

	result := workdir.Clean(dir)
	for _, f := range result.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", f)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: removed %d file(s), %d failure(s)\n",
		dir, result.Removed, len(result.Failures))
	return nil
}
