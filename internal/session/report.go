// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docpdf/pkg/types"
)

// Report is the serialisable summary of a run.
type Report struct {
	Session     string       `yaml:"session"`
	Mode        types.Mode   `yaml:"mode"`
	GeneratedAt time.Time    `yaml:"generated_at"`
	Files       []ReportFile `yaml:"files"`
	Zip         []string     `yaml:"zip_entries,omitempty"`
	Merged      bool         `yaml:"merged"`
	Messages    []Message    `yaml:"messages,omitempty"`
}

// ReportFile describes one upload in run order.
type ReportFile struct {
	Name   string                 `yaml:"name"`
	Order  int                    `yaml:"order"`
	Status types.ConversionStatus `yaml:"status,omitempty"`
}

// Report builds the summary of out for session s.
func (s *Session) Report(out Outcome) Report {
	r := Report{
		Session:     s.ID,
		Mode:        out.Mode,
		GeneratedAt: time.Now().UTC(),
		Zip:         out.Bundle.Entries,
		Merged:      out.Bundle.HasMerged(),
		Messages:    out.Messages,
	}
	for i, e := range out.Order {
		f := ReportFile{Name: e.File.Name, Order: e.Order}
		if i < len(out.Batch.Results) {
			f.Status = out.Batch.Results[i].Status
		}
		r.Files = append(r.Files, f)
	}
	return r
}

// WriteYAML encodes r to w.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
