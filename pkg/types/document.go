// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Mode selects which pipeline a session runs.
type Mode string

const (
	// ModeConvert converts .doc/.docx uploads to PDF, then zips and merges them.
	ModeConvert Mode = "convert"
	// ModeMerge merges pre-existing PDF uploads.
	ModeMerge Mode = "merge"
)

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ErrorKind classifies a user-visible failure.
type ErrorKind string

const (
	KindConversion ErrorKind = "conversion"
	KindMerge      ErrorKind = "merge"
	KindCleanup    ErrorKind = "cleanup"
	KindPackaging  ErrorKind = "packaging"
)

// UploadedFile is one file received from the user. It is not modified after
// it is received.
type UploadedFile struct {
	// Name is the file name as supplied by the user, possibly non-ASCII.
	Name string `json:"name" yaml:"name"`

	// Data is the raw file content.
	Data []byte `json:"-" yaml:"-"`
}

// OrderedEntry pairs an upload with its user-assigned order key.
// Order keys need not be unique or contiguous.
type OrderedEntry struct {
	File UploadedFile `json:"file" yaml:"file"`

	// Order is the user-assigned sort key, ascending.
	Order int `json:"order" yaml:"order"`

	// Index is the 0-based upload position; it breaks ties between equal keys.
	Index int `json:"index" yaml:"index"`
}

// ConversionResult is the outcome of converting one document. A failed
// result never carries PDF bytes.
type ConversionResult struct {
	Name   string           `json:"name" yaml:"name"`
	PDF    []byte           `json:"-" yaml:"-"`
	Status ConversionStatus `json:"status" yaml:"status"`
	Err    error            `json:"-" yaml:"-"`
}

// OK reports whether the conversion produced a PDF.
func (r ConversionResult) OK() bool {
	return r.Status == ConversionDone && len(r.PDF) > 0
}

// OutputBundle holds the downloadable products of one run. Either field may
// be empty.
type OutputBundle struct {
	// Zip is a zip archive of individually named PDFs (convert mode).
	Zip []byte `json:"-" yaml:"-"`

	// Entries lists the zip entry names in archive order.
	Entries []string `json:"entries,omitempty" yaml:"entries,omitempty"`

	// Merged is the single concatenated PDF.
	Merged []byte `json:"-" yaml:"-"`
}

// HasZip reports whether a zip archive was produced.
func (b OutputBundle) HasZip() bool { return len(b.Zip) > 0 }

// HasMerged reports whether a merged PDF was produced.
func (b OutputBundle) HasMerged() bool { return len(b.Merged) > 0 }
