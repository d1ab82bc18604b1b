// internals/features/streaming/route/streaming_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/streaming/controller"
	"almanara_backend/internals/features/streaming/service"
)

func StreamingRoutes(app *fiber.App, backend *service.BackendClient) {
	ctrl := controller.NewStreamController(backend)
	app.Get("/stream/lesson/:lessonId", ctrl.StreamLesson)
}
