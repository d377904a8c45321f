package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mall-office/internal/application/analytics"
	"github.com/tu-usuario/mall-office/internal/domain"
	"github.com/tu-usuario/mall-office/internal/domain/access"
	"github.com/tu-usuario/mall-office/internal/domain/entity"
)

// fakeChartRepo implementa solo lo que necesita el caso de uso del chart;
// el resto del puerto entra en pánico si se invoca por accidente.
type fakeChartRepo struct {
	visible   map[string][]entity.Payment // OwnerUserID -> pagos visibles
	all       []entity.Payment
	callCount int
}

func (r *fakeChartRepo) ListForChart(_ context.Context, filter access.RowFilter) ([]entity.Payment, error) {
	r.callCount++
	if filter.All {
		return r.all, nil
	}
	return r.visible[filter.OwnerUserID], nil
}

func (r *fakeChartRepo) Create(*entity.Payment) error { panic("no esperado") }
func (r *fakeChartRepo) Update(*entity.Payment) error { panic("no esperado") }
func (r *fakeChartRepo) Delete(string) error          { panic("no esperado") }
func (r *fakeChartRepo) GetByID(string, access.RowFilter) (*entity.Payment, error) {
	panic("no esperado")
}
func (r *fakeChartRepo) List(access.RowFilter, int, int) ([]*entity.Payment, error) {
	panic("no esperado")
}

func pagoChart(currency string, amount int64, y int, m time.Month) entity.Payment {
	return entity.Payment{
		ID:       "p",
		Currency: currency,
		Amount:   decimal.NewFromInt(amount),
		Date:     time.Date(y, m, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetCollectedRents_AdminVeTodo(t *testing.T) {
	repo := &fakeChartRepo{
		all: []entity.Payment{
			pagoChart(entity.CurrencyTRY, 100, 2024, time.January),
			pagoChart(entity.CurrencyTRY, 50, 2024, time.January),
			pagoChart(entity.CurrencyEUR, 30, 2024, time.February),
		},
	}
	uc := analytics.NewCollectedRentsUseCase(repo)

	out, err := uc.GetCollectedRents(context.Background(), access.RowFilter{All: true})
	require.NoError(t, err)
	require.Len(t, out.Points, 2)
	assert.Equal(t, "2024-01", out.Points[0].Month)
	assert.True(t, out.Points[0].TRY.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "2024-02", out.Points[1].Month)
	assert.True(t, out.Points[1].EUR.Equal(decimal.NewFromInt(30)))
}

func TestGetCollectedRents_ClientSoloSusPagos(t *testing.T) {
	repo := &fakeChartRepo{
		all: []entity.Payment{pagoChart(entity.CurrencyUSD, 9999, 2024, time.March)},
		visible: map[string][]entity.Payment{
			"user-1": {pagoChart(entity.CurrencyUSD, 40, 2024, time.March)},
		},
	}
	uc := analytics.NewCollectedRentsUseCase(repo)

	out, err := uc.GetCollectedRents(context.Background(), access.RowFilter{OwnerUserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, out.Points, 1)
	assert.True(t, out.Points[0].USD.Equal(decimal.NewFromInt(40)),
		"la serie solo suma los pagos visibles bajo el filtro")
}

func TestGetCollectedRents_DenyAllNoConsultaLaDB(t *testing.T) {
	repo := &fakeChartRepo{}
	uc := analytics.NewCollectedRentsUseCase(repo)

	out, err := uc.GetCollectedRents(context.Background(), access.RowFilter{})
	require.NoError(t, err)
	assert.Empty(t, out.Points)
	assert.Zero(t, repo.callCount, "con DenyAll no se toca el repositorio")
}

func TestGetCollectedRents_MonedaCorruptaSeSurface(t *testing.T) {
	repo := &fakeChartRepo{
		all: []entity.Payment{pagoChart("XXX", 10, 2024, time.May)},
	}
	uc := analytics.NewCollectedRentsUseCase(repo)

	_, err := uc.GetCollectedRents(context.Background(), access.RowFilter{All: true})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
}
