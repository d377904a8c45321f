// Package pdf implementa la generación del comprobante de pago de renta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Centro comercial  │  N° Comprobante + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOCAL: Nombre + Piso + Dirección del centro                │
//	│  ARRENDATARIO: Nombre + Teléfono (o "sin asignar")          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MONTO: Importe + Moneda destacados                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Leyenda de validez                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/mall-office/internal/application/payments"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ payments.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa payments.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, data payments.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Pago de Renta", true).
		WithAuthor(data.Mall.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(storeRow(data))
	m.AddRows(tenantRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: centro comercial (izq) y N° comprobante + fecha (der).
func headerRow(data payments.ReceiptData) core.Row {
	fecha := data.Payment.Date.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Mall.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Mall.City, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PAGO DE RENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+data.Payment.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// storeRow: datos del local arrendado.
func storeRow(data payments.ReceiptData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("LOCAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Piso %d   |   %s",
				data.Store.Name, data.Store.Floor, data.Mall.Address,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tenantRow: datos del arrendatario, o leyenda de local sin asignar.
func tenantRow(data payments.ReceiptData) core.Row {
	if data.Client == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("ARRENDATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Local sin arrendatario asignado", props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ARRENDATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Tel: "+nonEmpty(data.Client.PhoneNumber, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// amountRow: importe pagado destacado.
func amountRow(data payments.ReceiptData) core.Row {
	return row.New(22).Add(
		col.New(6).Add(
			text.New("TOTAL PAGADO", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New(formatAmount(data.Payment.Amount, data.Payment.Currency), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: colorPrimary, Top: 5,
			}),
		),
	)
}

// footerRow: leyenda de validez.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprobante acredita el pago de la renta del local indicado. "+
				"Consérvelo como soporte de la transacción.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

var moneyPrinter = message.NewPrinter(language.English)

// formatAmount formatea el importe con separador de miles y dos decimales,
// con el código de moneda como sufijo. Ej: "1,250.00 TRY".
func formatAmount(amount decimal.Decimal, currency string) string {
	f, _ := amount.Float64()
	return moneyPrinter.Sprintf("%v %s",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)),
		currency,
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
