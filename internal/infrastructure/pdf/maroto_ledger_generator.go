// Package pdf implementa la generación del reporte del Libro de Caja Menor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  Caja + Período              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUENTA: Código / Custodio / Sede / Saldo actual            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Código | Tipo | Categoría | Monto | Saldo   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Reposiciones / Egresos / Variación neta           │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/textil-erp/internal/application/reporting"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/pettycash"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// printer con separadores de miles al estilo es-CO.
var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLedgerGenerator implementa reporting.LedgerPDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct{}

// Compile-time check.
var _ reporting.LedgerPDFGenerator = (*MarotoLedgerGenerator)(nil)

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator { return &MarotoLedgerGenerator{} }

// GenerateLedgerPDF genera el PDF del libro y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(
	_ context.Context,
	company *entity.Company,
	account *entity.PettyCashAccount,
	transactions []*entity.PettyCashTransaction,
	totals pettycash.Totals,
	from, to time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Libro de Caja Menor", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, account, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(accountRow(account))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(transactions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: Razón social + NIT (izq) y caja + período (der).
func headerRow(company *entity.Company, account *entity.PettyCashAccount, from, to time.Time) core.Row {
	periodo := fmt.Sprintf("Período: %s – %s",
		from.Format("02/01/2006"),
		to.AddDate(0, 0, -1).Format("02/01/2006"), // [from, to): el último día incluido es to-1
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.NIT, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LIBRO DE CAJA MENOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(account.AccountCode, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(periodo, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// accountRow: datos de la caja.
func accountRow(account *entity.PettyCashAccount) core.Row {
	estado := "ACTIVA"
	if !account.IsActive {
		estado = "DESACTIVADA"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA CAJA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Custodio: %s   |   Estado: %s   |   Saldo actual: %s %s",
				account.Name,
				nonEmpty(account.CustodianName, "—"),
				estado,
				account.Currency,
				formatMoney(account.CurrentBalance),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de asientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Código", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Categoría", 2, align.Left),
		h("Monto", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

// tableDetailRows: una fila por asiento, con el saldo resultante auditado.
func tableDetailRows(transactions []*entity.PettyCashTransaction) []core.Row {
	result := make([]core.Row, 0, len(transactions))
	for _, t := range transactions {
		amountColor := colorPrimary
		if t.Type == entity.TransactionTypeDisbursement {
			amountColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				t.TransactionDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				t.TransactionCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				tipoLabel(t.Type),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(t.Category, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(t.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(t.BalanceAfter),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales del período alineado a la derecha.
func totalsRow(totals pettycash.Totals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
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
			label(fmt.Sprintf("Reposiciones (%d asientos):", totals.Count)),
			label("Egresos:"),
			grandLabel("VARIACIÓN NETA:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(totals.TotalReplenishments)),
			value("$"+formatMoney(totals.TotalDisbursements)),
			grandValue("$"+formatMoney(totals.NetChange)),
		),
		col.New(2),
	)
}

// footerRow: leyenda de soporte contable.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado a partir del libro de asientos. Cada asiento registra el saldo "+
				"anterior y posterior al momento de su creación y no se modifica después.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func tipoLabel(txType string) string {
	switch txType {
	case entity.TransactionTypeReplenishment:
		return "Reposición"
	case entity.TransactionTypeDisbursement:
		return "Egreso"
	case entity.TransactionTypeAdjustment:
		return "Ajuste"
	}
	return txType
}

// formatMoney formatea con separador de miles (es-CO) y dos decimales.
// Ej: 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
