// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/docpdf/internal/office"
)

// OfficeConverter converts documents by shelling out to a headless office
// suite. It is the backend for legacy .doc files.
type OfficeConverter struct {
	runtime office.Runtime
	timeout time.Duration
}

// NewOfficeConverter creates a converter around rt. A zero timeout leaves
// the external process unbounded.
func NewOfficeConverter(rt office.Runtime, timeout time.Duration) *OfficeConverter {
	return &OfficeConverter{runtime: rt, timeout: timeout}
}

// Convert runs the office suite against inputPath. The suite always names
// its output after the input stem inside the output directory; when that
// differs from outputPath the file is moved into place.
func (o *OfficeConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	outDir := filepath.Dir(outputPath)
	if err := o.runtime.Convert(ctx, inputPath, outDir, "pdf"); err != nil {
		return err
	}

	produced := filepath.Join(outDir, filepath.Base(OutputPath(inputPath)))
	if produced != outputPath {
		if err := os.Rename(produced, outputPath); err != nil {
			return fmt.Errorf("moving %s into place: %w", filepath.Base(produced), err)
		}
	}

	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("%s: %w", o.runtime.Name(), ErrEmptyOutput)
	}
	return nil
}
