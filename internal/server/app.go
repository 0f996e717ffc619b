// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the convert and merge workflows over HTTP: an
// upload form, JSON run results and download endpoints.
package server

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/storage/memory/v2"
	"github.com/rs/xid"

	"github.com/pdiddy/docpdf/internal/convert"
	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/pkg/types"
)

// Service holds the shared state behind the handlers.
type Service struct {
	cfg       types.Config
	converter convert.Converter
	outputs   fiber.Storage

	// run serialises pipelines: every session shares one working directory.
	run sync.Mutex
}

// NewService returns a Service that converts documents with conv and keeps
// produced downloads in memory for cfg.Server.OutputTTL.
func NewService(cfg types.Config, conv convert.Converter) *Service {
	return &Service{
		cfg:       cfg.WithDefaults(),
		converter: conv,
		outputs:   memory.New(),
	}
}

// Close releases the output store.
func (s *Service) Close() error {
	return s.outputs.Close()
}

// SetupApp creates and configures a new Fiber app around svc.
func SetupApp(svc *Service) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             svc.cfg.Server.MaxUploadMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				msg = e.Message
			}

			logging.Warn("request failed", "path", c.Path(), "status", code, "message", msg)

			return c.Status(code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    code,
					"message": msg,
				},
			})
		},
	})

	RegisterMiddleware(app)
	RegisterRoutes(app, svc)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}

// RegisterMiddleware attaches global middleware to the app.
func RegisterMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))
	app.Use(healthcheck.New())
}

// RegisterRoutes mounts all route handlers to the app.
func RegisterRoutes(app *fiber.App, svc *Service) {
	app.Get("/", svc.HandleIndex)

	v1 := app.Group("/v1")
	v1.Post("/convert", svc.HandleConvert)
	v1.Post("/merge", svc.HandleMerge)
	v1.Get("/sessions/:id/:kind", svc.HandleDownload)
}
