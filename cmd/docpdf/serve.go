// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload form and conversion API over HTTP",
	Long: `Serve starts an HTTP server with an upload form at / and the JSON
endpoints POST /v1/convert, POST /v1/merge and
GET /v1/sessions/{id}/{zip|merged}. Runs are processed one at a time because
all of them share the working directory. Produced downloads are kept in
memory for server.output_ttl.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, a ...any) {
		logging.Debug(fmt.Sprintf(format, a...))
	}))
	if err != nil {
		logging.Warn("could not adjust GOMAXPROCS", "error", err)
	}
	defer undo()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := server.NewService(cfg, newWordConverter(ctx, cfg.Conversion))
	defer svc.Close()
	app := server.SetupApp(svc)

	errc := make(chan error, 1)
	go func() {
		logging.Info("server listening", "addr", cfg.Server.Addr, "work_dir", cfg.Conversion.WorkDir)
		errc <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logging.Warn("shutdown signal received, closing server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logging.Error("server forced to shutdown", "error", err)
		return err
	}
	logging.Info("server stopped cleanly")
	return nil
}
