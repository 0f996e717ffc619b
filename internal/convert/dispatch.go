// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Dispatcher routes each document to the backend registered for its
// extension.
type Dispatcher struct {
	byExt map[string]Converter
}

// NewDispatcher returns a Dispatcher with no backends.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{byExt: make(map[string]Converter)}
}

// Register binds ext (e.g. ".doc") to c. Extensions are case-insensitive.
func (d *Dispatcher) Register(ext string, c Converter) *Dispatcher {
	d.byExt[strings.ToLower(ext)] = c
	return d
}

// Supports reports whether name has a registered extension.
func (d *Dispatcher) Supports(name string) bool {
	_, ok := d.byExt[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Extensions returns the registered extensions, sorted.
func (d *Dispatcher) Extensions() []string {
	exts := make([]string, 0, len(d.byExt))
	for ext := range d.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (d *Dispatcher) Convert(ctx context.Context, inputPath, outputPath string) error {
	ext := strings.ToLower(filepath.Ext(inputPath))
	c, ok := d.byExt[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return c.Convert(ctx, inputPath, outputPath)
}

// NewWordDispatcher wires the standard backends: legacy .doc through the
// office suite and .docx through the library converter.
func NewWordDispatcher(legacy, modern Converter) *Dispatcher {
	return NewDispatcher().
		Register(".doc", legacy).
		Register(".docx", modern)
}

// Unavailable returns a Converter that always fails with err. It stands in
// for a backend whose tool could not be found, so only the affected files
// fail.
func Unavailable(err error) Converter {
	return unavailable{err: err}
}

type unavailable struct{ err error }

func (u unavailable) Convert(context.Context, string, string) error { return u.err }
