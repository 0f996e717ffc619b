// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session orchestrates one user interaction: it holds the current
// batch and its order keys, and drives conversion, packaging and merging in
// that order.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/docpdf/internal/bundle"
	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/internal/merge"
	"github.com/pdiddy/docpdf/internal/workdir"
	"github.com/pdiddy/docpdf/pkg/types"
)

var (
	// ErrNoFiles is returned when a run is triggered on an empty batch.
	ErrNoFiles = errors.New("no files in batch")
	// ErrIndex is returned for an order override outside the batch.
	ErrIndex = errors.New("file index out of range")
)

// Message is a user-visible report of one failure.
type Message struct {
	Kind types.ErrorKind `json:"kind" yaml:"kind"`
	File string          `json:"file,omitempty" yaml:"file,omitempty"`
	Text string          `json:"text" yaml:"text"`
}

func (m Message) String() string {
	if m.File == "" {
		return fmt.Sprintf("%s: %s", m.Kind, m.Text)
	}
	return fmt.Sprintf("%s: %s: %s", m.Kind, m.File, m.Text)
}

// Outcome is the product of one run.
type Outcome struct {
	Mode     types.Mode
	Order    []types.OrderedEntry
	Batch    convert.BatchResult
	Bundle   types.OutputBundle
	Messages []Message
}

// Options configure a Session.
type Options struct {
	// WorkDir is the scratch directory; it must already exist.
	WorkDir string

	// Converter handles convert-mode documents. Unused in merge mode.
	Converter convert.Converter

	// Status receives per-file progress lines. Nil discards them.
	Status io.Writer

	// NoMerge skips the merged PDF in convert mode; only the zip is built.
	NoMerge bool
}

// Session is the context object for one interaction. It is not safe for
// concurrent use.
type Session struct {
	ID   string
	Mode types.Mode

	opts    Options
	entries []types.OrderedEntry
	log     zerolog.Logger
}

// New returns an empty session without touching the working directory.
func New(mode types.Mode, opts Options) *Session {
	if opts.Status == nil {
		opts.Status = io.Discard
	}
	id := xid.New().String()
	return &Session{
		ID:   id,
		Mode: mode,
		opts: opts,
		log:  logging.Logger().With().Str("session", id).Str("mode", string(mode)).Logger(),
	}
}

// Start prepares the working directory, purges stale files from it and
// returns a new session. Files that cannot be removed are reported as
// cleanup messages; only a directory that cannot be created is an error.
func Start(mode types.Mode, opts Options) (*Session, []Message, error) {
	dir, err := workdir.Prepare(opts.WorkDir)
	if err != nil {
		return nil, nil, err
	}
	opts.WorkDir = dir

	s := New(mode, opts)
	clean := workdir.Clean(dir)

	var msgs []Message
	for _, f := range clean.Failures {
		msgs = append(msgs, Message{Kind: types.KindCleanup, File: f.Path, Text: f.Err.Error()})
		s.log.Warn().Str("path", f.Path).Err(f.Err).Msg("stale file not removed")
	}
	s.log.Debug().Str("work_dir", dir).Int("removed", clean.Removed).Msg("working directory purged")
	return s, msgs, nil
}

// WorkDir returns the session's scratch directory.
func (s *Session) WorkDir() string { return s.opts.WorkDir }

// Add appends files to the batch. Each gets a default order key equal to
// its 1-based upload position.
func (s *Session) Add(files ...types.UploadedFile) {
	for _, f := range files {
		idx := len(s.entries)
		s.entries = append(s.entries, types.OrderedEntry{File: f, Order: idx + 1, Index: idx})
	}
}

// Len returns the number of files in the batch.
func (s *Session) Len() int { return len(s.entries) }

// SetOrder overrides the order key of the i-th upload (0-based). Keys are
// not validated: duplicates and out-of-range values are kept and resolved
// by upload position when sorting.
func (s *Session) SetOrder(i, order int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("%w: %d (batch has %d)", ErrIndex, i, len(s.entries))
	}
	s.entries[i].Order = order
	return nil
}

// SetOrders overrides the keys of the first len(orders) uploads.
func (s *Session) SetOrders(orders []int) error {
	if len(orders) > len(s.entries) {
		return fmt.Errorf("%w: %d order keys for %d files", ErrIndex, len(orders), len(s.entries))
	}
	for i, o := range orders {
		s.entries[i].Order = o
	}
	return nil
}

// Entries returns the batch in upload order.
func (s *Session) Entries() []types.OrderedEntry {
	return append([]types.OrderedEntry(nil), s.entries...)
}

// Sorted returns the batch ordered by key, ascending. Equal keys keep
// upload order.
func (s *Session) Sorted() []types.OrderedEntry {
	out := s.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Run triggers the pipeline for the session's mode.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	switch s.Mode {
	case types.ModeConvert:
		return s.RunConvert(ctx)
	case types.ModeMerge:
		return s.RunMerge(ctx)
	default:
		return Outcome{}, fmt.Errorf("unknown mode %q", s.Mode)
	}
}

// RunConvert converts the batch in key order. Each success becomes a zip
// entry numbered by its position among the successes; two or more
// successes are also merged. Failures are reported as messages.
func (s *Session) RunConvert(ctx context.Context) (Outcome, error) {
	if len(s.entries) == 0 {
		return Outcome{}, ErrNoFiles
	}
	if s.opts.Converter == nil {
		return Outcome{}, errors.New("session has no converter")
	}

	out := Outcome{Mode: types.ModeConvert, Order: s.Sorted()}
	s.log.Info().Int("files", len(out.Order)).Msg("conversion started")

	out.Batch = convert.ConvertBatch(ctx, s.opts.Converter, out.Order, s.opts.WorkDir, s.opts.Status)

	var (
		entries []bundle.Entry
		pdfs    [][]byte
	)
	for _, res := range out.Batch.Results {
		if !res.OK() {
			out.Messages = append(out.Messages, Message{Kind: types.KindConversion, File: res.Name, Text: errText(res.Err)})
			continue
		}
		entries = append(entries, bundle.Entry{Name: bundle.EntryName(len(entries)+1, res.Name), Data: res.PDF})
		pdfs = append(pdfs, res.PDF)
	}

	if len(entries) == 0 {
		s.log.Warn().Msg("no document converted")
		return out, nil
	}

	zip, err := bundle.Zip(entries)
	if err != nil {
		out.Messages = append(out.Messages, Message{Kind: types.KindPackaging, Text: err.Error()})
		s.log.Error().Err(err).Msg("packaging failed")
	} else {
		out.Bundle.Zip = zip
		for _, e := range entries {
			out.Bundle.Entries = append(out.Bundle.Entries, e.Name)
		}
	}

	if len(pdfs) > 1 && !s.opts.NoMerge {
		s.mergeInto(&out, pdfs)
	}

	s.log.Info().
		Int("converted", out.Batch.Converted).
		Int("failed", out.Batch.Failed).
		Bool("merged", out.Bundle.HasMerged()).
		Msg("conversion finished")
	return out, nil
}

// RunMerge merges the uploaded PDFs in key order without conversion.
func (s *Session) RunMerge(ctx context.Context) (Outcome, error) {
	if len(s.entries) == 0 {
		return Outcome{}, ErrNoFiles
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	out := Outcome{Mode: types.ModeMerge, Order: s.Sorted()}
	pdfs := make([][]byte, len(out.Order))
	for i, e := range out.Order {
		pdfs[i] = e.File.Data
	}

	s.mergeInto(&out, pdfs)
	s.log.Info().Int("files", len(pdfs)).Bool("merged", out.Bundle.HasMerged()).Msg("merge finished")
	return out, nil
}

func (s *Session) mergeInto(out *Outcome, pdfs [][]byte) {
	merged, err := merge.Merge(pdfs)
	if err != nil {
		out.Messages = append(out.Messages, Message{Kind: types.KindMerge, Text: err.Error()})
		s.log.Error().Err(err).Int("documents", len(pdfs)).Msg("merge failed")
		return
	}
	out.Bundle.Merged = merged
}

func errText(err error) string {
	if err == nil {
		return "conversion failed"
	}
	return err.Error()
}
