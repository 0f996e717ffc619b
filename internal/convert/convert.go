// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns uploaded Word documents into PDF bytes with
// pluggable backends: a headless office suite for legacy .doc files and a
// direct library call for .docx.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/internal/sanitize"
	"github.com/pdiddy/docpdf/pkg/types"
)

var (
	// ErrUnsupportedFormat is returned for extensions no backend handles.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyOutput is returned when a backend reports success but leaves no PDF.
	ErrEmptyOutput = errors.New("converter produced no PDF")
)

// Converter writes a PDF rendition of the document at inputPath to
// outputPath.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// BatchResult holds the outcome of a batch conversion run, in run order.
type BatchResult struct {
	Results   []types.ConversionResult
	Converted int
	Failed    int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Successes returns the successful results in run order.
func (r BatchResult) Successes() []types.ConversionResult {
	out := make([]types.ConversionResult, 0, r.Converted)
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// OutputPath returns inputPath with its extension replaced by .pdf.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".pdf"
}

// ConvertFile persists file under a sanitized name in workDir, converts it
// and reads the PDF back. The intermediate input is always removed. Errors
// are returned inside the result, never raised.
func ConvertFile(ctx context.Context, c Converter, file types.UploadedFile, workDir string) types.ConversionResult {
	result := types.ConversionResult{Name: file.Name, Status: types.ConversionFailed}

	inputPath := filepath.Join(workDir, sanitize.Filename(file.Name))
	outputPath := OutputPath(inputPath)
	defer removeIntermediate(inputPath)

	pdf, err := convertAt(ctx, c, file.Data, inputPath, outputPath)
	if err != nil {
		result.Err = fmt.Errorf("converting %s: %w", file.Name, err)
		return result
	}

	result.PDF = pdf
	result.Status = types.ConversionDone
	return result
}

func convertAt(ctx context.Context, c Converter, data []byte, inputPath, outputPath string) ([]byte, error) {
	if err := os.WriteFile(inputPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", filepath.Base(inputPath), err)
	}
	// A PDF left by an earlier file with the same stem must not be read back.
	if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("clearing stale %s: %w", filepath.Base(outputPath), err)
	}
	if err := c.Convert(ctx, inputPath, outputPath); err != nil {
		return nil, err
	}

	pdf, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(outputPath), err)
	}
	if len(pdf) == 0 {
		return nil, ErrEmptyOutput
	}
	return pdf, nil
}

func removeIntermediate(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn("could not remove intermediate file", "path", path, "error", err)
	}
}

// ConvertBatch converts entries one at a time in the given order, printing
// per-file status to w. A failed document does not stop the batch.
func ConvertBatch(ctx context.Context, c Converter, entries []types.OrderedEntry, workDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, e := range entries {
		res := ConvertFile(ctx, c, e.File, workDir)
		result.Results = append(result.Results, res)

		if res.OK() {
			result.Converted++
			fmt.Fprintf(w, "converted: %s\n", e.File.Name)
			logging.Info("document converted", "file", e.File.Name, "bytes", len(res.PDF))
			continue
		}
		result.Failed++
		fmt.Fprintf(w, "failed:    %s (%v)\n", e.File.Name, res.Err)
		logging.Warn("document conversion failed", "file", e.File.Name, "error", res.Err)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
