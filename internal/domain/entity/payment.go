package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas aceptadas para pagos de renta.
const (
	CurrencyTRY = "TRY"
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
)

// ValidCurrency informa si la moneda pertenece al conjunto aceptado.
func ValidCurrency(currency string) bool {
	switch currency {
	case CurrencyTRY, CurrencyEUR, CurrencyUSD:
		return true
	}
	return false
}

// Payment representa una transacción de renta de un local.
// La fecha por defecto es el momento de creación si no se indica.
type Payment struct {
	ID        string
	StoreID   string
	Amount    decimal.Decimal
	Currency  string // TRY, EUR o USD
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
