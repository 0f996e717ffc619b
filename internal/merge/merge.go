// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates in-memory PDF documents with pdfcpu.
package merge

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var (
	// ErrNoInput is returned when Merge is called with no documents.
	ErrNoInput = errors.New("no PDFs to merge")
	// ErrMerge wraps every failure inside the merge itself.
	ErrMerge = errors.New("merging PDFs failed")
)

func init() {
	// pdfcpu otherwise creates a config directory under the user's home.
	api.DisableConfigDir()
}

func newConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Merge appends every document in order into one PDF and returns its bytes.
// All pages of each input are kept in sequence. On any error no partial
// output is returned.
func Merge(pdfs [][]byte) ([]byte, error) {
	if len(pdfs) == 0 {
		return nil, ErrNoInput
	}

	readers := make([]io.ReadSeeker, len(pdfs))
	for i, p := range pdfs {
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: document %d is empty", ErrMerge, i+1)
		}
		readers[i] = bytes.NewReader(p)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, newConfig()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	return out.Bytes(), nil
}

// PageCount returns the number of pages in pdf.
func PageCount(pdf []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdf), newConfig())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// PageSizes returns the media box dimensions of every page, in points.
func PageSizes(pdf []byte) ([]types.Dim, error) {
	dims, err := api.PageDims(bytes.NewReader(pdf), newConfig())
	if err != nil {
		return nil, fmt.Errorf("reading page sizes: %w", err)
	}
	return dims, nil
}
