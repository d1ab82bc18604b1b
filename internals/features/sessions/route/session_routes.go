// internals/features/sessions/route/session_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/sessions/controller"
)

func SessionRoutes(api fiber.Router) {
	ctrl := &controller.SessionController{}
	api.Post("/session", ctrl.Sync)
	api.Delete("/session", ctrl.Clear)
}
