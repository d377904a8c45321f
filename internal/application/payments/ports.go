package payments

import (
	"context"

	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// ReceiptData reúne todo lo que necesita el comprobante PDF de un pago.
// Client puede ser nil si el local no tiene arrendatario asignado.
type ReceiptData struct {
	Payment *entity.Payment
	Store   *entity.Store
	Mall    *entity.Mall
	Client  *entity.Client
}

// ReceiptGenerator genera el comprobante PDF de un pago de renta.
// Lo implementa infrastructure/pdf con Maroto.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}
