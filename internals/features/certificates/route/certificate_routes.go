// internals/features/certificates/route/certificate_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/certificates/controller"
	"almanara_backend/internals/features/certificates/service"
)

func CertificateRoutes(api fiber.Router, g *service.Generator) {
	ctrl := controller.NewCertificateController(g)
	api.Post("/certificates", ctrl.Generate)
}
