package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/constants"
	"almanara_backend/internals/features/streaming/service"
)

func newStreamApp(backendURL string) *fiber.App {
	app := fiber.New()
	ctrl := NewStreamController(service.NewBackendClient(backendURL))
	app.Get("/stream/lesson/:lessonId", ctrl.StreamLesson)
	return app
}

func streamRequest(lessonID, cookie, rangeHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/stream/lesson/"+lessonID, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: constants.StreamTokenCookie, Value: cookie})
	}
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}
	return req
}

func TestStreamRequiresCookie(t *testing.T) {
	app := newStreamApp("http://localhost:0")

	resp, err := app.Test(streamRequest("1", "", ""), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestStreamLessonWithoutMediaIs404(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"video_url":""}}`))
	}))
	defer backend.Close()

	app := newStreamApp(backend.URL)
	resp, err := app.Test(streamRequest("1", "tok", ""), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestStreamBackendFailureIs403(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	app := newStreamApp(backend.URL)
	resp, err := app.Test(streamRequest("1", "tok", ""), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestStreamOriginDownIs502(t *testing.T) {
	// Origin sudah mati saat proxy mencoba fetch.
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	originURL := origin.URL
	origin.Close()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"video_url":"` + originURL + `/video.mp4"}}`))
	}))
	defer backend.Close()

	app := newStreamApp(backend.URL)
	resp, err := app.Test(streamRequest("1", "tok", ""), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}

func TestStreamRangePassthrough(t *testing.T) {
	payload := "0123456789abcdef"

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Range"); got != "bytes=0-3" {
			t.Errorf("range header not forwarded, got %q", got)
		}
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Range", "bytes 0-3/16")
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusPartialContent)
		w.Write([]byte(payload[:4]))
	}))
	defer origin.Close()

	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"video_url":"` + origin.URL + `/video.mp4"}}`))
	}))
	defer backend.Close()

	app := newStreamApp(backend.URL)
	resp, err := app.Test(streamRequest("42", "session-token", "bytes=0-3"), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if gotAuth != "Bearer session-token" {
		t.Fatalf("cookie token not forwarded as bearer, got %q", gotAuth)
	}
	if resp.StatusCode != fiber.StatusPartialContent {
		t.Fatalf("expected 206, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "video/mp4" {
		t.Fatalf("content type not forwarded: %q", ct)
	}
	if cr := resp.Header.Get("Content-Range"); cr != "bytes 0-3/16" {
		t.Fatalf("content range not forwarded: %q", cr)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("expected no-store, got %q", cc)
	}
	// CORS origin tidak boleh bocor dari origin server.
	if acao := resp.Header.Get("Access-Control-Allow-Origin"); acao == "*" {
		t.Fatalf("origin CORS header leaked through proxy")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != payload[:4] {
		t.Fatalf("expected %q, got %q", payload[:4], body)
	}
}

func TestStreamFlatEnvelopeFallback(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Write([]byte("xx"))
	}))
	defer origin.Close()

	// Backend lama mengembalikan video_url di root, bukan di data{}.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"video_url":"` + origin.URL + `/video.mp4"}`))
	}))
	defer backend.Close()

	app := newStreamApp(backend.URL)
	resp, err := app.Test(streamRequest("1", "tok", ""), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Content-Disposition"), "inline") {
		t.Fatalf("expected inline disposition")
	}
}
