// Package rents agrega pagos de renta ya filtrados por acceso en totales
// mensuales por moneda, listos para el gráfico del dashboard.
package rents

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// MonthPoint es un punto de la serie mensual. Las tres monedas están siempre
// presentes; la que no tuvo pagos en el mes queda en cero.
type MonthPoint struct {
	Month string          `json:"month"` // clave YYYY-MM, ordenable lexicográficamente
	TRY   decimal.Decimal `json:"TRY"`
	EUR   decimal.Decimal `json:"EUR"`
	USD   decimal.Decimal `json:"USD"`
}

// MonthlyTotals agrupa los pagos en cubetas por mes calendario y moneda.
//
// La serie resultante está ordenada por clave de mes ascendente, solo
// contiene meses con al menos un pago y es independiente del orden de
// entrada. Entrada vacía produce serie vacía.
//
// Una moneda fuera de {TRY, EUR, USD} es una anomalía de integridad de
// datos: se devuelve domain.ErrInvalidCurrency en lugar de descartar el
// importe en silencio.
func MonthlyTotals(payments []entity.Payment) ([]MonthPoint, error) {
	buckets := make(map[string]*MonthPoint, len(payments))

	for _, p := range payments {
		key := monthKey(p)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthPoint{
				Month: key,
				TRY:   decimal.Zero,
				EUR:   decimal.Zero,
				USD:   decimal.Zero,
			}
			buckets[key] = bucket
		}
		switch p.Currency {
		case entity.CurrencyTRY:
			bucket.TRY = bucket.TRY.Add(p.Amount)
		case entity.CurrencyEUR:
			bucket.EUR = bucket.EUR.Add(p.Amount)
		case entity.CurrencyUSD:
			bucket.USD = bucket.USD.Add(p.Amount)
		default:
			return nil, fmt.Errorf("rents: pago %s con moneda %q: %w",
				p.ID, p.Currency, domain.ErrInvalidCurrency)
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// Formato YYYY-MM de ancho fijo: el orden lexicográfico es cronológico.
	sort.Strings(keys)

	points := make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, *buckets[k])
	}
	return points, nil
}

// monthKey deriva la clave de cubeta del pago: año y mes calendario de la
// fecha, con mes 1-indexado y relleno a dos dígitos.
func monthKey(p entity.Payment) string {
	return fmt.Sprintf("%04d-%02d", p.Date.Year(), int(p.Date.Month()))
}
