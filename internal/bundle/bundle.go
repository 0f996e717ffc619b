// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bundle packages produced PDFs for download.
package bundle

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Download names and content types.
const (
	ZipFileName    = "pdf_dosyalari.zip"
	MergedFileName = "birlestirilmis.pdf"
	ZipMIME        = "application/zip"
	PDFMIME        = "application/pdf"
)

// Entry is one file inside the zip archive.
type Entry struct {
	Name string
	Data []byte
}

// EntryName returns the archive name for the seq-th (1-based) successful
// document: a two-digit prefix and the original base name with a .pdf
// extension, e.g. "01_report.pdf".
func EntryName(seq int, originalName string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%02d_%s.pdf", seq, stem)
}

// Zip writes entries, in order, into a zip archive.
func Zip(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}
