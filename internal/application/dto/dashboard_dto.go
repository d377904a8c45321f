package dto

import "github.com/shopspring/decimal"

// MonthlyRentDTO un punto de la serie del gráfico de rentas recaudadas.
// Las tres monedas están siempre presentes (cero si el mes no tuvo pagos
// en esa moneda).
type MonthlyRentDTO struct {
	Month string          `json:"month"` // YYYY-MM
	TRY   decimal.Decimal `json:"TRY"`
	EUR   decimal.Decimal `json:"EUR"`
	USD   decimal.Decimal `json:"USD"`
}

// CollectedRentsResponse respuesta de GET /api/dashboard/collected-rents.
// La serie está ordenada por mes ascendente y solo incluye meses con al
// menos un pago visible para la sesión.
type CollectedRentsResponse struct {
	Points []MonthlyRentDTO `json:"points"`
}
