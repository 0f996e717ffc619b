// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/pdiddy/docpdf/internal/merge"
	"github.com/pdiddy/docpdf/internal/office"
	"github.com/pdiddy/docpdf/internal/session"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"no input", ErrNoInput, ExitUsage},
		{"wrapped unsupported input", fmt.Errorf("%w: a.txt", ErrUnsupportedInput), ExitUsage},
		{"bad order", fmt.Errorf("%w: x", ErrBadOrder), ExitUsage},
		{"too many order keys", fmt.Errorf("%w: 3 keys", session.ErrIndex), ExitUsage},
		{"config", ErrConfig, ExitUsage},
		{"empty merge", merge.ErrNoInput, ExitUsage},
		{"missing file", fmt.Errorf("reading a.doc: %w", os.ErrNotExist), ExitIO},
		{"output not writable", fmt.Errorf("%w: disk full", ErrWriteOutput), ExitIO},
		{"no office", fmt.Errorf("%w: tried soffice", office.ErrUnavailable), ExitConverter},
		{"nothing produced", ErrNothingProduced, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
