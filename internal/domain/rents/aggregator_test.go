package rents_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
	"github.com/tu-usuario/mall-office/internal/domain/rents"
)

func pago(id string, date time.Time, currency string, amount float64) entity.Payment {
	return entity.Payment{
		ID:       id,
		Currency: currency,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
	}
}

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyTotals_AgrupaPorMesYMoneda(t *testing.T) {
	pagos := []entity.Payment{
		pago("p1", fecha(2024, time.January, 5), entity.CurrencyTRY, 100),
		pago("p2", fecha(2024, time.January, 20), entity.CurrencyTRY, 50),
		pago("p3", fecha(2024, time.February, 1), entity.CurrencyEUR, 30),
	}

	points, err := rents.MonthlyTotals(pagos)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-01", points[0].Month)
	assert.True(t, points[0].TRY.Equal(decimal.NewFromInt(150)), "TRY de enero: %s", points[0].TRY)
	assert.True(t, points[0].EUR.IsZero(), "EUR de enero debe ser cero")
	assert.True(t, points[0].USD.IsZero(), "USD de enero debe ser cero")

	assert.Equal(t, "2024-02", points[1].Month)
	assert.True(t, points[1].TRY.IsZero())
	assert.True(t, points[1].EUR.Equal(decimal.NewFromInt(30)))
	assert.True(t, points[1].USD.IsZero())
}

func TestMonthlyTotals_EntradaVacia(t *testing.T) {
	points, err := rents.MonthlyTotals(nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestMonthlyTotals_InvarianteAnteElOrden(t *testing.T) {
	pagos := []entity.Payment{
		pago("p1", fecha(2023, time.December, 31), entity.CurrencyUSD, 10.50),
		pago("p2", fecha(2024, time.March, 15), entity.CurrencyTRY, 2000),
		pago("p3", fecha(2024, time.January, 1), entity.CurrencyEUR, 75.25),
		pago("p4", fecha(2024, time.March, 2), entity.CurrencyTRY, 500),
	}
	invertidos := []entity.Payment{pagos[3], pagos[2], pagos[1], pagos[0]}

	a, err := rents.MonthlyTotals(pagos)
	require.NoError(t, err)
	b, err := rents.MonthlyTotals(invertidos)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Month, b[i].Month)
		assert.True(t, a[i].TRY.Equal(b[i].TRY))
		assert.True(t, a[i].EUR.Equal(b[i].EUR))
		assert.True(t, a[i].USD.Equal(b[i].USD))
	}
}

func TestMonthlyTotals_OrdenCronologicoYSinDuplicados(t *testing.T) {
	pagos := []entity.Payment{
		pago("p1", fecha(2024, time.November, 3), entity.CurrencyTRY, 1),
		pago("p2", fecha(2023, time.February, 3), entity.CurrencyTRY, 1),
		pago("p3", fecha(2024, time.January, 3), entity.CurrencyTRY, 1),
		pago("p4", fecha(2023, time.February, 25), entity.CurrencyEUR, 1),
	}

	points, err := rents.MonthlyTotals(pagos)
	require.NoError(t, err)

	meses := make([]string, 0, len(points))
	for _, p := range points {
		meses = append(meses, p.Month)
	}
	assert.Equal(t, []string{"2023-02", "2024-01", "2024-11"}, meses)
}

func TestMonthlyTotals_HoraDelDiaIrrelevante(t *testing.T) {
	pagos := []entity.Payment{
		pago("p1", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), entity.CurrencyUSD, 40),
		pago("p2", time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC), entity.CurrencyUSD, 60),
	}

	points, err := rents.MonthlyTotals(pagos)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2024-05", points[0].Month)
	assert.True(t, points[0].USD.Equal(decimal.NewFromInt(100)))
}

func TestMonthlyTotals_MonedaDesconocidaEsError(t *testing.T) {
	pagos := []entity.Payment{
		pago("p1", fecha(2024, time.June, 10), entity.CurrencyTRY, 100),
		pago("p2", fecha(2024, time.June, 11), "GBP", 100),
	}

	points, err := rents.MonthlyTotals(pagos)
	require.Error(t, err, "una moneda fuera del conjunto no se descarta en silencio")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
	assert.Contains(t, err.Error(), "GBP")
	assert.Nil(t, points)
}

func TestMonthlyTotals_MontosDecimalesExactos(t *testing.T) {
	// Tres pagos de 0.10 deben sumar exactamente 0.30 (sin ruido de floats).
	pagos := []entity.Payment{
		pago("p1", fecha(2024, time.July, 1), entity.CurrencyEUR, 0.10),
		pago("p2", fecha(2024, time.July, 2), entity.CurrencyEUR, 0.10),
		pago("p3", fecha(2024, time.July, 3), entity.CurrencyEUR, 0.10),
	}

	points, err := rents.MonthlyTotals(pagos)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].EUR.Equal(decimal.RequireFromString("0.3")),
		"EUR de julio: %s", points[0].EUR)
}
