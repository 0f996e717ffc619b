package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/merge"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [pdfs...]",
	Short: "Print the page count and page sizes of PDF files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	var failed int
	for _, p := range args {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		dims, err := merge.PageSizes(data)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", p, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s: %d page(s)\n", p, len(dims))
		for i, d := range dims {
			fmt.Fprintf(w, "  %3d  %.0f x %.0f pt\n", i+1, d.Width, d.Height)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be read as PDF", failed)
	}
	return nil
}
