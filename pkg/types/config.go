package types

import "time"

// WorkspaceConfig locates the scratch directory used during conversion.
type WorkspaceConfig struct {
	// WorkDir is the scratch directory. Empty means
	// ~/Documents/pdf_converter_files.
	WorkDir string `json:"work_dir" yaml:"work_dir" mapstructure:"work_dir"`
}

// ConversionConfig holds settings for the document-to-PDF stage.
type ConversionConfig struct {
	WorkspaceConfig `yaml:",inline" mapstructure:",squash"`

	// OfficeBin overrides office runtime detection with an explicit binary
	// (e.g. "/opt/libreoffice/program/soffice").
	OfficeBin string `json:"office_bin,omitempty" yaml:"office_bin,omitempty" mapstructure:"office_bin"`

	// Timeout bounds a single external conversion (default 2m).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// File, when set, sends logs to a rotated file instead of stderr.
	File       string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `json:"compress" yaml:"compress" mapstructure:"compress"`

	// Pretty switches stderr output to zerolog's human-readable console writer.
	Pretty bool `json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}

// ServerConfig holds settings for the HTTP upload surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// MaxUploadMB caps the request body size (default 64).
	MaxUploadMB int `json:"max_upload_mb" yaml:"max_upload_mb" mapstructure:"max_upload_mb"`

	// OutputTTL is how long produced downloads stay available (default 15m).
	OutputTTL time.Duration `json:"output_ttl" yaml:"output_ttl" mapstructure:"output_ttl"`
}

// Config groups all settings read from docpdf.yaml and DOCPDF_* variables.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}

// Defaults applied by WithDefaults.
const (
	DefaultConversionTimeout = 2 * time.Minute
	DefaultAddr              = ":8080"
	DefaultMaxUploadMB       = 64
	DefaultOutputTTL         = 15 * time.Minute
	DefaultLogLevel          = "info"
)

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.Conversion.Timeout <= 0 {
		c.Conversion.Timeout = DefaultConversionTimeout
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxUploadMB <= 0 {
		c.Server.MaxUploadMB = DefaultMaxUploadMB
	}
	if c.Server.OutputTTL <= 0 {
		c.Server.OutputTTL = DefaultOutputTTL
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	return c
}
