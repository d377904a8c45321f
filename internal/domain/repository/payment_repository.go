package repository

import (
	"context"

	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
//
// Las lecturas aplican el access.RowFilter: el filtro de dueño se resuelve
// vía payment.store.client.user_id. ListForChart alimenta el dashboard de
// rentas recaudadas y devuelve todos los pagos visibles sin paginar.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string, filter access.RowFilter) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	List(filter access.RowFilter, limit, offset int) ([]*entity.Payment, error)
	ListForChart(ctx context.Context, filter access.RowFilter) ([]entity.Payment, error)
	Delete(id string) error
}
