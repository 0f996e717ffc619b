package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/session"
	"github.com/pdiddy/docpdf/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [documents...]",
	Short: "Convert .doc/.docx files to PDF, zip them and merge them",
	Long: `Convert turns each document into a PDF, in the order given by --order
(default: argument order). Every successful PDF is added to
pdf_dosyalari.zip as NN_<name>.pdf; when two or more documents convert they
are also merged into birlestirilmis.pdf. A document that fails to convert
is reported and skipped.`,
	Example: `  docpdf convert report.docx notes.doc
  docpdf convert a.docx b.docx c.doc --order 3,1,2 --out ./pdfs`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("order", "", "comma-separated order keys, one per document (e.g. 3,1,2)")
	convertCmd.Flags().String("out", ".", "directory for pdf_dosyalari.zip and birlestirilmis.pdf")
	convertCmd.Flags().String("report", "", "write a YAML run report to this file")
	convertCmd.Flags().Bool("no-merge", false, "only build the zip, never birlestirilmis.pdf")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	files, err := readInputs(args, ".doc", ".docx")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := newWordConverter(ctx, cfg.Conversion)
	return runSession(ctx, cmd, cfg, types.ModeConvert, conv, files)
}

// runSession drives one session from CLI flags and writes its outputs.
func runSession(ctx context.Context, cmd *cobra.Command, cfg types.Config, mode types.Mode, conv convert.Converter, files []types.UploadedFile) error {
	orderFlag, _ := cmd.Flags().GetString("order")
	outDir, _ := cmd.Flags().GetString("out")
	reportPath, _ := cmd.Flags().GetString("report")
	noMerge, _ := cmd.Flags().GetBool("no-merge")

	orders, err := parseOrder(orderFlag)
	if err != nil {
		return err
	}

	sess, msgs, err := session.Start(mode, session.Options{
		WorkDir:   cfg.Conversion.WorkDir,
		Converter: conv,
		Status:    cmd.OutOrStdout(),
		NoMerge:   noMerge,
	})
	if err != nil {
		return err
	}
	printMessages(cmd.ErrOrStderr(), msgs)

	sess.Add(files...)
	if err := sess.SetOrders(orders); err != nil {
		return err
	}

	out, err := sess.Run(ctx)
	if err != nil {
		return err
	}
	printMessages(cmd.ErrOrStderr(), out.Messages)

	written, err := writeOutputs(outDir, out.Bundle)
	for _, p := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote: %s\n", p)
	}
	if err != nil {
		return err
	}

	if reportPath != "" {
		if err := writeReport(reportPath, sess.Report(out)); err != nil {
			return err
		}
	}

	if len(written) == 0 {
		return ErrNothingProduced
	}
	return nil
}

func writeReport(path string, r session.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer f.Close()
	if err := r.WriteYAML(f); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
