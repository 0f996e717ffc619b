package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/office"
	"github.com/pdiddy/docpdf/internal/workdir"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the converters and working directory are usable",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	dir, err := workdir.Prepare(cfg.Conversion.WorkDir)
	if err != nil {
		fmt.Fprintf(w, "working directory: FAIL (%v)\n", err)
		return err
	}
	fmt.Fprintf(w, "working directory: ok (%s)\n", dir)
	fmt.Fprintln(w, ".docx converter:   ok (built in)")

	rt, err := office.Detect(context.Background(), cfg.Conversion.OfficeBin)
	if err != nil {
		fmt.Fprintf(w, ".doc converter:    FAIL (%v)\n", err)
		return err
	}
	fmt.Fprintf(w, ".doc converter:    ok (%s)\n", rt.Name())
	return nil
}
