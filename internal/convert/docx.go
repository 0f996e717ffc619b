// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"os"

	docx2pdf "github.com/DwifteJB/docx2pdf-bytes"
)

// DocxConverter converts .docx files with an in-process library call.
type DocxConverter struct {
	render func([]byte) ([]byte, error)
}

// NewDocxConverter returns the library-backed .docx converter.
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{render: docx2pdf.ConvertBytes}
}

func (d *DocxConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	pdf, err := d.render(in)
	if err != nil {
		return fmt.Errorf("rendering docx: %w", err)
	}
	if len(pdf) == 0 {
		return ErrEmptyOutput
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
