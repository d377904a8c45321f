package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/mall-office/internal/application/analytics"
	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/access"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.CollectedRentsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.CollectedRentsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetCollectedRents devuelve la serie mensual de rentas recaudadas por moneda.
// GET /api/dashboard/collected-rents
//
// Respuesta: CollectedRentsResponse (points[], cada uno con month YYYY-MM y
// los totales TRY/EUR/USD del mes, cero incluido). La serie respeta el filtro
// de fila: un arrendatario solo suma los pagos de sus propios locales.
func (h *DashboardHandler) GetCollectedRents(c *fiber.Ctx) error {
	filter := access.QueryFilter(CurrentSession(c), access.EntityPayment)
	out, err := h.uc.GetCollectedRents(c.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCurrency) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "INVALID_CURRENCY", Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
