// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office detects and drives a headless office suite (LibreOffice)
// for converting legacy documents.
package office

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	binSoffice     = "soffice"
	binLibreoffice = "libreoffice"
)

// ErrUnavailable is returned when no office binary is usable.
var ErrUnavailable = errors.New("no office runtime available")

// Runtime converts documents with a headless office binary.
type Runtime interface {
	// Name returns the binary name or path in use.
	Name() string

	// Available reports whether the binary exists and answers --version.
	Available(ctx context.Context) bool

	// Convert runs a headless conversion of inputPath to format, writing
	// the result into outDir under the input's stem.
	Convert(ctx context.Context, inputPath, outDir, format string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(ctx context.Context, name string, args ...string) error
	RunCombined(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (o *osExecutor) RunCombined(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// runtime implements Runtime for one office binary. soffice and libreoffice
// accept the same arguments.
type runtime struct {
	bin  string
	exec executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available(ctx context.Context) bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(ctx, r.bin, "--version") == nil
}

func (r *runtime) Convert(ctx context.Context, inputPath, outDir, format string) error {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving output directory %s: %w", outDir, err)
	}
	absIn, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("resolving input %s: %w", inputPath, err)
	}

	args := ConvertArgs(absIn, absOut, format)
	out, err := r.exec.RunCombined(ctx, r.bin, args...)
	if err != nil {
		return fmt.Errorf("%s --convert-to %s %s: %w: %s",
			r.bin, format, filepath.Base(inputPath), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ConvertArgs builds the headless conversion argument list. A private user
// profile under outDir keeps parallel office instances from locking each
// other's profile.
func ConvertArgs(inputPath, outDir, format string) []string {
	profile := filepath.Join(outDir, ".soffice")
	return []string{
		"-env:UserInstallation=file://" + filepath.ToSlash(profile),
		"--headless",
		"--convert-to", format,
		"--outdir", outDir,
		inputPath,
	}
}

var defaultExec = &osExecutor{}

// New returns a Runtime for an explicit binary without probing it.
func New(bin string) Runtime {
	return &runtime{bin: bin, exec: defaultExec}
}

// Detect returns a Runtime for bin when set, otherwise tries soffice and then
// libreoffice on PATH.
func Detect(ctx context.Context, bin string) (Runtime, error) {
	return detect(ctx, defaultExec, bin)
}

func detect(ctx context.Context, exec executor, bin string) (Runtime, error) {
	candidates := []string{binSoffice, binLibreoffice}
	if bin != "" {
		candidates = []string{bin}
	}

	for _, c := range candidates {
		rt := &runtime{bin: c, exec: exec}
		if rt.Available(ctx) {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", ErrUnavailable, strings.Join(candidates, ", "))
}
