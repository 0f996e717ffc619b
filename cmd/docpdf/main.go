// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docpdf CLI. It converts Word
// documents to PDF, merges PDFs in a user-chosen order, and can serve the
// same workflows over HTTP.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docpdf CLI.
var rootCmd = &cobra.Command{
	Use:   "docpdf",
	Short: "Convert Word documents to PDF and merge PDFs",
	Long: `docpdf converts .doc and .docx files to PDF, packages the results as a
zip archive and, when two or more documents convert, a single merged PDF.
It also merges existing PDFs in a chosen order.

Legacy .doc files are converted with a headless LibreOffice (soffice);
.docx files are converted in-process. Intermediate files live in a scratch
working directory that is purged at the start of every run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logging.Init(cfg.Log)
		if f := viper.ConfigFileUsed(); f != "" {
			logging.Debug("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docpdf.yaml or ~/.config/docpdf/docpdf.yaml)")
	rootCmd.PersistentFlags().String("work-dir", "", "scratch directory (default: ~/Documents/pdf_converter_files)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("conversion.work_dir", rootCmd.PersistentFlags().Lookup("work-dir"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docpdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docpdf"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("DOCPDF")
	viper.SetEnvKeyReplacer(stringsReplacer())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// stringsReplacer maps nested keys to environment names:
// conversion.work_dir -> DOCPDF_CONVERSION_WORK_DIR.
func stringsReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// setDefaults registers every key so environment overrides apply even
// without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("conversion.work_dir", "")
	v.SetDefault("conversion.office_bin", "")
	v.SetDefault("conversion.timeout", types.DefaultConversionTimeout)
	v.SetDefault("server.addr", types.DefaultAddr)
	v.SetDefault("server.max_upload_mb", types.DefaultMaxUploadMB)
	v.SetDefault("server.output_ttl", types.DefaultOutputTTL)
	v.SetDefault("log.level", types.DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.pretty", false)
}

// loadConfig decodes the merged viper settings.
func loadConfig() (types.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg.WithDefaults(), nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(exitCodeFor(err))
}
