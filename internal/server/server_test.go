// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docpdf/internal/merge"
	"github.com/pdiddy/docpdf/internal/pdffixture"
	"github.com/pdiddy/docpdf/pkg/types"
)

// fixtureConverter writes a fixture PDF per sanitized input name.
type fixtureConverter struct {
	pdfs map[string][]byte
}

func (f *fixtureConverter) Convert(_ context.Context, inputPath, outputPath string) error {
	pdf, ok := f.pdfs[filepath.Base(inputPath)]
	if !ok {
		return errors.New("cannot convert " + filepath.Base(inputPath))
	}
	return os.WriteFile(outputPath, pdf, 0o644)
}

type part struct {
	name string
	data []byte
}

func setup(t *testing.T, conv *fixtureConverter) *fiber.App {
	t.Helper()
	cfg := types.Config{}
	cfg.Conversion.WorkDir = t.TempDir()
	svc := NewService(cfg, conv)
	t.Cleanup(func() { svc.Close() })
	return SetupApp(svc)
}

func upload(t *testing.T, app *fiber.App, path string, files []part, orders ...int) (*http.Response, []byte) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		w, err := mw.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = w.Write(f.data)
		require.NoError(t, err)
	}
	for _, o := range orders {
		require.NoError(t, mw.WriteField("order", strconv.Itoa(o)))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	return do(t, app, httptest.NewRequest(http.MethodGet, path, nil))
}

func TestConvertEndpoint(t *testing.T) {
	conv := &fixtureConverter{pdfs: map[string][]byte{
		"report.docx": pdffixture.Pages(t, 200, 210),
		"notes.doc":   pdffixture.Pages(t, 300),
	}}
	app := setup(t, conv)

	resp, body := upload(t, app, "/v1/convert", []part{
		{name: "report.docx", data: []byte("docx")},
		{name: "notes.doc", data: []byte("doc")},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var run RunResponse
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Equal(t, types.ModeConvert, run.Mode)
	assert.Equal(t, []string{"report.docx", "notes.doc"}, run.Order)
	assert.Equal(t, []string{"01_report.pdf", "02_notes.pdf"}, run.Entries)
	assert.Equal(t, 2, run.Converted)
	assert.Empty(t, run.Messages)
	require.NotEmpty(t, run.Downloads.Zip)
	require.NotEmpty(t, run.Downloads.Merged)

	resp, zipData := get(t, app, run.Downloads.Zip)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "pdf_dosyalari.zip")
	assert.NotEmpty(t, zipData)

	resp, merged := get(t, app, run.Downloads.Merged)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "birlestirilmis.pdf")
	n, err := merge.PageCount(merged)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestConvertEndpoint_OrderAndFailure(t *testing.T) {
	conv := &fixtureConverter{pdfs: map[string][]byte{
		"X.docx": pdffixture.Pages(t, 200),
		"Z.docx": pdffixture.Pages(t, 400),
	}}
	app := setup(t, conv)

	resp, body := upload(t, app, "/v1/convert", []part{
		{name: "X.docx", data: []byte("x")},
		{name: "Y.docx", data: []byte("y")},
		{name: "Z.docx", data: []byte("z")},
	}, 3, 1, 2)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var run RunResponse
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Equal(t, []string{"Y.docx", "Z.docx", "X.docx"}, run.Order)
	assert.Equal(t, []string{"01_Z.pdf", "02_X.pdf"}, run.Entries)
	assert.Equal(t, 1, run.Failed)
	require.Len(t, run.Messages, 1)
	assert.Equal(t, types.KindConversion, run.Messages[0].Kind)
	assert.NotEmpty(t, run.Downloads.Merged)
}

func TestMergeEndpoint(t *testing.T) {
	app := setup(t, &fixtureConverter{})

	resp, body := upload(t, app, "/v1/merge", []part{
		{name: "a.pdf", data: pdffixture.Pages(t, 200, 210)},
		{name: "b.PDF", data: pdffixture.Pages(t, 300)},
	}, 2, 1)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var run RunResponse
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Equal(t, []string{"b.PDF", "a.pdf"}, run.Order)
	assert.Empty(t, run.Downloads.Zip)
	require.NotEmpty(t, run.Downloads.Merged)

	_, merged := get(t, app, run.Downloads.Merged)
	dims, err := merge.PageSizes(merged)
	require.NoError(t, err)
	require.Len(t, dims, 3)
	assert.InDelta(t, 300, dims[0].Width, 0.5)
}

func TestMergeEndpoint_MalformedReportsMessage(t *testing.T) {
	app := setup(t, &fixtureConverter{})

	resp, body := upload(t, app, "/v1/merge", []part{
		{name: "a.pdf", data: pdffixture.Pages(t, 200)},
		{name: "b.pdf", data: []byte("not a pdf")},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var run RunResponse
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Empty(t, run.Downloads.Merged)
	require.Len(t, run.Messages, 1)
	assert.Equal(t, types.KindMerge, run.Messages[0].Kind)
}

func TestUploadValidation(t *testing.T) {
	app := setup(t, &fixtureConverter{})

	tests := []struct {
		name   string
		path   string
		files  []part
		orders []int
		status int
	}{
		{name: "no files", path: "/v1/convert", status: fiber.StatusBadRequest},
		{name: "pdf in convert mode", path: "/v1/convert", files: []part{{name: "a.pdf", data: []byte("x")}}, status: fiber.StatusUnsupportedMediaType},
		{name: "docx in merge mode", path: "/v1/merge", files: []part{{name: "a.docx", data: []byte("x")}}, status: fiber.StatusUnsupportedMediaType},
		{name: "empty file", path: "/v1/merge", files: []part{{name: "a.pdf"}}, status: fiber.StatusBadRequest},
		{name: "more orders than files", path: "/v1/merge", files: []part{{name: "a.pdf", data: []byte("x")}}, orders: []int{1, 2}, status: fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := upload(t, app, tt.path, tt.files, tt.orders...)
			assert.Equal(t, tt.status, resp.StatusCode, string(body))
			assert.Contains(t, string(body), `"error"`)
		})
	}
}

func TestDownload_NotFound(t *testing.T) {
	app := setup(t, &fixtureConverter{})

	for _, path := range []string{"/v1/sessions/unknown/zip", "/v1/sessions/unknown/merged", "/v1/sessions/x/other", "/nope"} {
		resp, _ := get(t, app, path)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
	}
}

func TestIndexAndHealth(t *testing.T) {
	app := setup(t, &fixtureConverter{})

	resp, body := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), `data-endpoint="/v1/convert"`)
	assert.Contains(t, string(body), `data-endpoint="/v1/merge"`)

	resp, _ = get(t, app, "/livez")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = get(t, app, "/")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRunPurgesWorkDir(t *testing.T) {
	cfg := types.Config{}
	cfg.Conversion.WorkDir = t.TempDir()
	stale := filepath.Join(cfg.Conversion.WorkDir, "stale.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	svc := NewService(cfg, &fixtureConverter{})
	t.Cleanup(func() { svc.Close() })
	app := SetupApp(svc)

	resp, _ := upload(t, app, "/v1/merge", []part{{name: "a.pdf", data: pdffixture.Pages(t, 200)}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoFileExists(t, stale)
}
