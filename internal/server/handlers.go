// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pdiddy/docpdf/internal/bundle"
	"github.com/pdiddy/docpdf/internal/logging"
	"github.com/pdiddy/docpdf/internal/session"
	"github.com/pdiddy/docpdf/pkg/types"
)

// Download kinds in /v1/sessions/:id/:kind.
const (
	kindZip    = "zip"
	kindMerged = "merged"
)

var acceptedExt = map[types.Mode][]string{
	types.ModeConvert: {".doc", ".docx"},
	types.ModeMerge:   {".pdf"},
}

// RunResponse is the JSON body returned by the convert and merge endpoints.
type RunResponse struct {
	Session   string            `json:"session"`
	Mode      types.Mode        `json:"mode"`
	Order     []string          `json:"order"`
	Entries   []string          `json:"entries,omitempty"`
	Converted int               `json:"converted"`
	Failed    int               `json:"failed"`
	Messages  []session.Message `json:"messages"`
	Downloads Downloads         `json:"downloads"`
}

// Downloads holds the URLs of the produced outputs, when any.
type Downloads struct {
	Zip    string `json:"zip,omitempty"`
	Merged string `json:"merged,omitempty"`
}

// HandleIndex serves the upload form.
func (s *Service) HandleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(indexPage)
}

// HandleConvert converts uploaded Word documents and returns download links
// for the zip archive and, with two or more successes, the merged PDF.
func (s *Service) HandleConvert(c *fiber.Ctx) error {
	return s.handleRun(c, types.ModeConvert)
}

// HandleMerge merges uploaded PDFs and returns the merged PDF link.
func (s *Service) HandleMerge(c *fiber.Ctx) error {
	return s.handleRun(c, types.ModeMerge)
}

func (s *Service) handleRun(c *fiber.Ctx, mode types.Mode) error {
	files, orders, err := readUploads(c, mode)
	if err != nil {
		return err
	}

	s.run.Lock()
	defer s.run.Unlock()

	sess, msgs, err := session.Start(mode, session.Options{
		WorkDir:   s.cfg.Conversion.WorkDir,
		Converter: s.converter,
		NoMerge:   c.FormValue("no_merge") == "true",
	})
	if err != nil {
		logging.Error("working directory unavailable", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "working directory unavailable")
	}

	sess.Add(files...)
	if err := sess.SetOrders(orders); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	out, err := sess.Run(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	out.Messages = append(msgs, out.Messages...)

	resp := RunResponse{
		Session:   sess.ID,
		Mode:      mode,
		Entries:   out.Bundle.Entries,
		Converted: out.Batch.Converted,
		Failed:    out.Batch.Failed,
		Messages:  out.Messages,
	}
	if resp.Messages == nil {
		resp.Messages = []session.Message{}
	}
	for _, e := range out.Order {
		resp.Order = append(resp.Order, e.File.Name)
	}

	if out.Bundle.HasZip() {
		if err := s.outputs.Set(outputKey(sess.ID, kindZip), out.Bundle.Zip, s.cfg.Server.OutputTTL); err != nil {
			return err
		}
		resp.Downloads.Zip = downloadPath(sess.ID, kindZip)
	}
	if out.Bundle.HasMerged() {
		if err := s.outputs.Set(outputKey(sess.ID, kindMerged), out.Bundle.Merged, s.cfg.Server.OutputTTL); err != nil {
			return err
		}
		resp.Downloads.Merged = downloadPath(sess.ID, kindMerged)
	}

	logging.Info("run finished",
		"request_id", c.Locals("requestid"),
		"session", sess.ID,
		"mode", string(mode),
		"files", len(files),
		"messages", len(out.Messages))
	return c.JSON(resp)
}

// HandleDownload serves a stored zip archive or merged PDF.
func (s *Service) HandleDownload(c *fiber.Ctx) error {
	id, kind := c.Params("id"), c.Params("kind")

	var name, mime string
	switch kind {
	case kindZip:
		name, mime = bundle.ZipFileName, bundle.ZipMIME
	case kindMerged:
		name, mime = bundle.MergedFileName, bundle.PDFMIME
	default:
		return fiber.NewError(fiber.StatusNotFound, "unknown download "+kind)
	}

	data, err := s.outputs.Get(outputKey(id, kind))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "download expired or never produced")
	}

	c.Attachment(name)
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}

func outputKey(id, kind string) string { return id + ":" + kind }

func downloadPath(id, kind string) string { return "/v1/sessions/" + id + "/" + kind }

// readUploads collects the "files" parts and optional "order" values.
func readUploads(c *fiber.Ctx, mode types.Mode) ([]types.UploadedFile, []int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "expected multipart form upload")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "no files uploaded")
	}

	files := make([]types.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		if !accepted(mode, fh.Filename) {
			return nil, nil, fiber.NewError(fiber.StatusUnsupportedMediaType,
				fmt.Sprintf("%s: expected one of %s", fh.Filename, strings.Join(acceptedExt[mode], ", ")))
		}
		data, err := readPart(fh)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		files = append(files, types.UploadedFile{Name: fh.Filename, Data: data})
	}

	var orders []int
	for _, v := range form.Value["order"] {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid order %q", v))
		}
		orders = append(orders, n)
	}
	return files, orders, nil
}

func accepted(mode types.Mode, name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range acceptedExt[mode] {
		if ext == a {
			return true
		}
	}
	return false
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fh.Filename, err)
	}
	if len(data) == 0 {
		return nil, errors.New(fh.Filename + " is empty")
	}
	return data, nil
}
