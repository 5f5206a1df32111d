// Package pdf implementa la generación del reporte de caja en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Categoría | Descripción | Monto       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingresos / Gastos / BALANCE NETO                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/Taller-api/internal/application/reports"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIncome  = &props.Color{Red: 22, Green: 120, Blue: 60}
	colorExpense = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.CashflowPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.CashflowPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCashflowPDF genera el PDF del reporte de caja y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCashflowPDF(
	_ context.Context,
	rows []*entity.Cashflow,
	totalIncome, totalExpense decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Caja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalIncome, totalExpense))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ingresos y gastos registrados", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de transacciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Categoría", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Monto", 3, align.Right),
	)
}

// tableRows: una fila por transacción; el monto lleva signo y color según el tipo.
func tableRows(cashflows []*entity.Cashflow) []core.Row {
	result := make([]core.Row, 0, len(cashflows))
	for _, c := range cashflows {
		amountColor := colorIncome
		amount := "+$" + formatMoney(c.Amount.StringFixed(0))
		tipo := "Ingreso"
		if c.Type == entity.CashflowTypeExpense {
			amountColor = colorExpense
			amount = "-$" + formatMoney(c.Amount.StringFixed(0))
			tipo = "Gasto"
		}

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				c.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				tipo,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				c.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				c.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				amount,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(totalIncome, totalExpense decimal.Decimal) core.Row {
	net := totalIncome.Sub(totalExpense)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total ingresos:"),
			label("Total gastos:"),
			grandLabel("BALANCE NETO:"),
		),
		col.New(4).Add(
			value("$"+formatMoney(totalIncome.StringFixed(0)), colorIncome),
			value("$"+formatMoney(totalExpense.StringFixed(0)), colorExpense),
			grandValue("$"+formatMoney(net.StringFixed(0))),
		),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
