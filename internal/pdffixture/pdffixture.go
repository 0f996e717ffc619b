// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdffixture builds small real PDF documents for tests.
package pdffixture

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// Height is the page height, in points, of every generated page.
const Height = 600.0

// Pages returns a PDF with one page per width. Each page is width x Height
// points and carries a label, so page order can be checked from page sizes.
func Pages(t testing.TB, widths ...float64) []byte {
	t.Helper()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: widths[0], Ht: Height},
	})
	pdf.SetFont("Helvetica", "", 12)
	for i, w := range widths {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: Height})
		pdf.Text(20, 40, fmt.Sprintf("page %d (%.0fpt)", i+1, w))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("generating fixture PDF: %v", err)
	}
	return buf.Bytes()
}

// N returns a PDF with n pages of increasing width starting at base.
func N(t testing.TB, n int, base float64) []byte {
	t.Helper()
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = base + float64(i)
	}
	return Pages(t, widths...)
}
