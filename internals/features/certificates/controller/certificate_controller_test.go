package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/certificates/service"
)

func newCertificateApp(t *testing.T) *fiber.App {
	t.Helper()
	g := &service.Generator{
		OutputDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:3000/public/certificates",
	}
	app := fiber.New()
	app.Post("/api/certificates", NewCertificateController(g).Generate)
	return app
}

func postCertificate(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/certificates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func TestGenerateCourseCertificate(t *testing.T) {
	app := newCertificateApp(t)

	body := `{
		"type": "course",
		"certificate": {
			"id": 7,
			"user_id": 3,
			"course_id": 12,
			"course_title": "Intro to Tajwid",
			"user_name": "Aisha Rahman",
			"verification_token": "tok-abc",
			"verification_url": "https://example.com/verify/tok-abc",
			"completed_at": "2025-06-01"
		}
	}`
	resp, raw := postCertificate(t, app, body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}

	var env struct {
		Success bool           `json:"success"`
		Data    service.Result `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope: %s", raw)
	}
	if !strings.HasPrefix(env.Data.Filename, "course-") {
		t.Fatalf("unexpected filename: %q", env.Data.Filename)
	}
	if !strings.HasSuffix(env.Data.FilePath, "/"+env.Data.Filename) {
		t.Fatalf("file path does not end with filename: %q", env.Data.FilePath)
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	app := newCertificateApp(t)

	resp, raw := postCertificate(t, app, `{"type":"badge","certificate":{"id":1,"course_title":"X","user_name":"Y"}}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, raw)
	}
}

func TestGenerateRejectsMissingTitle(t *testing.T) {
	app := newCertificateApp(t)

	// type=diploma tapi hanya course_title yang dikirim → judul efektif kosong.
	resp, raw := postCertificate(t, app, `{"type":"diploma","certificate":{"id":1,"course_title":"Fiqh","user_name":"Aisha"}}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "title") {
		t.Fatalf("expected title error message: %s", raw)
	}
}

func TestGenerateRejectsMissingRecipient(t *testing.T) {
	app := newCertificateApp(t)

	resp, raw := postCertificate(t, app, `{"type":"course","certificate":{"id":1,"course_title":"Fiqh","user_name":"   "}}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "recipient") {
		t.Fatalf("expected recipient error message: %s", raw)
	}
}
