package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago de renta.
// Date es opcional: si falta, el use case usa el momento de creación.
type CreatePaymentRequest struct {
	StoreID  string          `json:"store_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"required,oneof=TRY EUR USD"`
	Date     *time.Time      `json:"date"`
}

// UpdatePaymentRequest entrada para corregir un pago (solo admin).
type UpdatePaymentRequest struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency *string          `json:"currency" validate:"omitempty,oneof=TRY EUR USD"`
	Date     *time.Time       `json:"date"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
