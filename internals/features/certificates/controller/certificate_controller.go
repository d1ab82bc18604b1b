// internals/features/certificates/controller/certificate_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/certificates/dto"
	"almanara_backend/internals/features/certificates/service"
	helper "almanara_backend/internals/helpers"
)

var validate = validator.New()

type CertificateController struct {
	Generator *service.Generator
}

func NewCertificateController(g *service.Generator) *CertificateController {
	return &CertificateController{Generator: g}
}

// =========================================================
// GENERATE - POST /api/certificates
// Body: { "type": "course"|"diploma", "certificate": {...} }
// =========================================================
func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid certificate payload")
	}
	if req.Title() == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing course/category title")
	}
	if req.Certificate.UserName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing recipient name")
	}

	issuedAt := time.Now()
	if t := dto.ParseTime(req.Certificate.IssuedAt); t != nil {
		issuedAt = *t
	}

	res, err := ctrl.Generator.Generate(c.UserContext(), service.Input{
		Type:              req.Type,
		CertificateID:     req.Certificate.ID,
		RecipientID:       req.Certificate.UserID,
		ItemID:            req.ItemID(),
		Title:             req.Title(),
		RecipientName:     req.Certificate.UserName,
		VerificationToken: req.Certificate.VerificationToken,
		VerificationURL:   req.Certificate.VerificationURL,
		CompletedAt:       dto.ParseTime(req.Certificate.CompletedAt),
		IssuedAt:          issuedAt,
	})
	if err != nil {
		log.Println("[ERROR] certificate generation:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate certificate")
	}

	return helper.JsonCreated(c, "Certificate generated", res)
}
