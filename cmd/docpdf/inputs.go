// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/docpdf/internal/bundle"
	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/internal/office"
	"github.com/pdiddy/docpdf/internal/session"
	"github.com/pdiddy/docpdf/pkg/types"
)

// readInputs loads each path as an upload named after its base name. Only
// the listed extensions are accepted.
func readInputs(paths []string, exts ...string) ([]types.UploadedFile, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: expected %s files", ErrNoInput, strings.Join(exts, ", "))
	}

	files := make([]types.UploadedFile, 0, len(paths))
	for _, p := range paths {
		if !hasExt(p, exts) {
			return nil, fmt.Errorf("%w: %s (expected %s)", ErrUnsupportedInput, p, strings.Join(exts, ", "))
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, types.UploadedFile{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// parseOrder parses a comma-separated list of order keys ("3,1,2"). An
// empty string means upload order.
func parseOrder(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	orders := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadOrder, p)
		}
		orders = append(orders, n)
	}
	return orders, nil
}

// writeOutputs saves the bundle's zip and merged PDF into dir and returns
// the written paths.
func writeOutputs(dir string, b types.OutputBundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	var written []string
	for _, out := range []struct {
		name string
		data []byte
	}{
		{bundle.ZipFileName, b.Zip},
		{bundle.MergedFileName, b.Merged},
	} {
		if len(out.data) == 0 {
			continue
		}
		path := filepath.Join(dir, out.name)
		if err := os.WriteFile(path, out.data, 0o644); err != nil {
			return written, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// printMessages writes user-visible failures to w.
func printMessages(w io.Writer, msgs []session.Message) {
	for _, m := range msgs {
		fmt.Fprintf(w, "warning: %s\n", m)
	}
}

// newWordConverter wires the .doc and .docx backends. When no office
// runtime is found, only .doc files fail.
func newWordConverter(ctx context.Context, cfg types.ConversionConfig) convert.Converter {
	var legacy convert.Converter
	rt, err := office.Detect(ctx, cfg.OfficeBin)
	if err != nil {
		logging.Warn("legacy .doc conversion unavailable", "error", err)
		legacy = convert.Unavailable(err)
	} else {
		logging.Debug("office runtime detected", "bin", rt.Name())
		legacy = convert.NewOfficeConverter(rt, cfg.Timeout)
	}
	return convert.NewWordDispatcher(legacy, convert.NewDocxConverter())
}
