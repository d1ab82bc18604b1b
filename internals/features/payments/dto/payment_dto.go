// internals/features/payments/dto/payment_dto.go
package dto

import "strings"

const (
	ItemTypeCourse  = "course"
	ItemTypeDiploma = "diploma"
)

// CheckoutRequest: permintaan pembuatan transaksi Snap untuk satu item katalog.
type CheckoutRequest struct {
	Type  string `json:"type" validate:"required,oneof=course diploma"`
	ID    uint   `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (r *CheckoutRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// CheckoutResponse: token Snap yang dipakai frontend untuk membuka popup pembayaran.
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
