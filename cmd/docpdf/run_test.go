// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docpdf/internal/bundle"
	"github.com/pdiddy/docpdf/internal/merge"
	"github.com/pdiddy/docpdf/internal/pdffixture"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	work := filepath.Join(dir, "work")
	out := filepath.Join(dir, "out")
	report := filepath.Join(dir, "report.yaml")

	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, os.WriteFile(a, pdffixture.Pages(t, 300), 0o644))
	require.NoError(t, os.WriteFile(b, pdffixture.Pages(t, 400, 410), 0o644))

	stdout, err := execute(t, "merge", a, b,
		"--order", "2,1",
		"--out", out,
		"--report", report,
		"--work-dir", work,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote: "+filepath.Join(out, bundle.MergedFileName))

	merged, err := os.ReadFile(filepath.Join(out, bundle.MergedFileName))
	require.NoError(t, err)
	dims, err := merge.PageSizes(merged)
	require.NoError(t, err)
	require.Len(t, dims, 3)
	assert.InDelta(t, 400, dims[0].Width, 0.5)
	assert.InDelta(t, 410, dims[1].Width, 0.5)
	assert.InDelta(t, 300, dims[2].Width, 0.5)

	_, err = os.Stat(filepath.Join(out, bundle.ZipFileName))
	assert.ErrorIs(t, err, os.ErrNotExist)

	raw, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "mode: merge")

	info, err := os.Stat(work)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMergeCommandRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "notes.docx")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0o644))

	_, err := execute(t, "merge", doc, "--work-dir", filepath.Join(dir, "work"), "--order", "")
	require.ErrorIs(t, err, ErrUnsupportedInput)
	assert.Equal(t, ExitUsage, exitCodeFor(err))
}
