// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/store"
	catalogRoute "almanara_backend/internals/features/catalog/route"
	certificateRoute "almanara_backend/internals/features/certificates/route"
	certificateService "almanara_backend/internals/features/certificates/service"
	paymentRoute "almanara_backend/internals/features/payments/route"
	sessionRoute "almanara_backend/internals/features/sessions/route"
	streamingRoute "almanara_backend/internals/features/streaming/route"
	streamingService "almanara_backend/internals/features/streaming/service"
)

var startTime time.Time

func SetupRoutes(
	app *fiber.App,
	st store.CatalogStore,
	generator *certificateService.Generator,
	backend *streamingService.BackendClient,
) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	// ===================== MOCK CATALOG =====================
	log.Println("[INFO] Setting up CatalogRoutes...")
	catalogRoute.CatalogRoutes(api, st)

	// ===================== CERTIFICATES =====================
	log.Println("[INFO] Setting up CertificateRoutes...")
	certificateRoute.CertificateRoutes(api, generator)

	// ===================== PAYMENTS =====================
	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(api, st)

	// ===================== SESSION SYNC =====================
	log.Println("[INFO] Setting up SessionRoutes...")
	sessionRoute.SessionRoutes(api)

	// ===================== STREAMING PROXY =====================
	log.Println("[INFO] Setting up StreamingRoutes...")
	streamingRoute.StreamingRoutes(app, backend)
}

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Al-Manara backend core ready 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "OK",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("APP_ENV"),
		})
	})
}
