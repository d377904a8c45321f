// Package analytics contiene el caso de uso del dashboard de rentas
// recaudadas por mes y moneda.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/rents"
	"github.com/tu-usuario/mall-office/internal/domain/repository"
)

// CollectedRentsUseCase construye la serie mensual del gráfico de rentas.
//
// Los pagos llegan ya filtrados por acceso: el repositorio aplica el
// RowFilter de la sesión antes de que el agregador los vea, igual que el
// resto de consultas de pagos.
type CollectedRentsUseCase struct {
	paymentRepo repository.PaymentRepository
}

// NewCollectedRentsUseCase construye el caso de uso.
func NewCollectedRentsUseCase(paymentRepo repository.PaymentRepository) *CollectedRentsUseCase {
	return &CollectedRentsUseCase{paymentRepo: paymentRepo}
}

// GetCollectedRents agrega los pagos visibles para la sesión en totales
// mensuales por moneda. Con un filtro que niega todo devuelve la serie
// vacía sin consultar la base de datos.
func (uc *CollectedRentsUseCase) GetCollectedRents(ctx context.Context, filter access.RowFilter) (*dto.CollectedRentsResponse, error) {
	if filter.DenyAll() {
		return &dto.CollectedRentsResponse{Points: []dto.MonthlyRentDTO{}}, nil
	}

	pagos, err := uc.paymentRepo.ListForChart(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("collected rents: pagos visibles: %w", err)
	}

	points, err := rents.MonthlyTotals(pagos)
	if err != nil {
		// Moneda fuera del conjunto: anomalía de integridad, se propaga en
		// lugar de descartar el importe.
		return nil, fmt.Errorf("collected rents: %w", err)
	}

	out := make([]dto.MonthlyRentDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.MonthlyRentDTO{
			Month: p.Month,
			TRY:   p.TRY,
			EUR:   p.EUR,
			USD:   p.USD,
		})
	}
	return &dto.CollectedRentsResponse{Points: out}, nil
}
