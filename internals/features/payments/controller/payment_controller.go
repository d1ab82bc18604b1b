// internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanara_backend/internals/features/catalog/store"
	"almanara_backend/internals/features/payments/dto"
	"almanara_backend/internals/features/payments/service"
	helper "almanara_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	Store store.CatalogStore
}

func NewPaymentController(st store.CatalogStore) *PaymentController {
	return &PaymentController{Store: st}
}

// =========================================================
// CHECKOUT - POST /api/checkout
// Buat Snap token untuk pembelian course / diploma (kategori).
// =========================================================
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	if !service.Configured() {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Payments are not configured")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	title, price, isFree, err := ctrl.lookupItem(c, req.Type, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to access data")
	}
	if isFree || price <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Item is free and does not require payment")
	}

	orderID := fmt.Sprintf("%s-%d-%s", req.Type, req.ID, uuid.NewString()[:8])
	token, redirectURL, err := service.GenerateSnapToken(orderID, int64(price), req.Name, req.Email)
	if err != nil {
		log.Println("[ERROR] checkout: snap transaction:", err, "| item:", title)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment transaction")
	}

	return helper.JsonCreated(c, "Payment transaction created", dto.CheckoutResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// lookupItem mengambil judul + harga item sesuai tipe checkout.
func (ctrl *PaymentController) lookupItem(c *fiber.Ctx, itemType string, id uint) (string, float64, bool, error) {
	switch itemType {
	case dto.ItemTypeDiploma:
		cat, err := ctrl.Store.GetCategory(c.UserContext(), id)
		if err != nil {
			return "", 0, false, err
		}
		return cat.Title, cat.Price, cat.IsFree, nil
	default:
		course, err := ctrl.Store.GetCourse(c.UserContext(), id)
		if err != nil {
			return "", 0, false, err
		}
		return course.Title, course.Price, course.IsFree, nil
	}
}
