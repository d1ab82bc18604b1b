// internals/features/payments/route/payment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/store"
	"almanara_backend/internals/features/payments/controller"
)

func PaymentRoutes(api fiber.Router, st store.CatalogStore) {
	ctrl := controller.NewPaymentController(st)
	api.Post("/checkout", ctrl.Checkout)
}
