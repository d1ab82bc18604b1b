package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/model"
	"almanara_backend/internals/features/catalog/store/memory"
	"almanara_backend/internals/features/payments/service"
)

func newCheckoutApp(st *memory.Store) *fiber.App {
	app := fiber.New()
	ctrl := NewPaymentController(st)
	app.Post("/api/checkout", ctrl.Checkout)
	return app
}

func postCheckout(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestCheckoutUnconfiguredIs503(t *testing.T) {
	service.InitMidtrans("")
	app := newCheckoutApp(memory.Open())

	resp := postCheckout(t, app, `{"type":"course","id":1,"name":"Aisha","email":"aisha@example.com"}`)
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestCheckoutValidationIs422(t *testing.T) {
	service.InitMidtrans("sandbox-test-key")
	defer service.InitMidtrans("")
	app := newCheckoutApp(memory.Open())

	resp := postCheckout(t, app, `{"type":"course","id":1,"name":"Aisha","email":"not-an-email"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestCheckoutUnknownItemIs404(t *testing.T) {
	service.InitMidtrans("sandbox-test-key")
	defer service.InitMidtrans("")
	app := newCheckoutApp(memory.Open())

	resp := postCheckout(t, app, `{"type":"course","id":99,"name":"Aisha","email":"aisha@example.com"}`)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCheckoutFreeItemIs400(t *testing.T) {
	service.InitMidtrans("sandbox-test-key")
	defer service.InitMidtrans("")

	st := memory.Open()
	course := &model.Course{Title: "Free Intro", IsFree: true}
	if err := st.CreateCourse(context.Background(), course); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	app := newCheckoutApp(st)
	resp := postCheckout(t, app, `{"type":"course","id":1,"name":"Aisha","email":"aisha@example.com"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCheckoutDiplomaLooksUpCategory(t *testing.T) {
	service.InitMidtrans("sandbox-test-key")
	defer service.InitMidtrans("")

	st := memory.Open()
	// Hanya course id 1 yang ada; checkout diploma harus cek kategori → 404.
	if err := st.CreateCourse(context.Background(), &model.Course{Title: "Paid", Price: 100}); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	app := newCheckoutApp(st)
	resp := postCheckout(t, app, `{"type":"diploma","id":1,"name":"Aisha","email":"aisha@example.com"}`)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
