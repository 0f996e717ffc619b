// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"os"

	"github.com/pdiddy/docpdf/internal/merge"
	"github.com/pdiddy/docpdf/internal/office"
	"github.com/pdiddy/docpdf/internal/session"
)

// CLI errors mapped to exit codes.
var (
	ErrNoInput          = errors.New("no input files")
	ErrUnsupportedInput = errors.New("unsupported input file")
	ErrBadOrder         = errors.New("invalid --order")
	ErrConfig           = errors.New("invalid configuration")
	ErrWriteOutput      = errors.New("writing output")
	ErrNothingProduced  = errors.New("no output produced")
)

// Exit codes for the docpdf CLI.
const (
	ExitSuccess   = 0 // All requested outputs produced
	ExitGeneral   = 1 // Nothing produced or unexpected error
	ExitUsage     = 2 // Invalid arguments, flags or config
	ExitIO        = 3 // File not found, permission denied, output not writable
	ExitConverter = 4 // No office runtime available
)

// exitCodeFor returns the exit code for err. Callers wrap with %w so
// errors.Is sees the sentinel.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, office.ErrUnavailable) {
		return ExitConverter
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnsupportedInput) ||
		errors.Is(err, ErrBadOrder) ||
		errors.Is(err, ErrConfig) ||
		errors.Is(err, session.ErrIndex) ||
		errors.Is(err, session.ErrNoFiles) ||
		errors.Is(err, merge.ErrNoInput) {
		return ExitUsage
	}

	return ExitGeneral
}
