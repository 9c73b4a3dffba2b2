// Package pdf implementa la versión imprimible de los reportes financieros.
//
// Layout de la página A4 (ambos reportes):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Título del reporte + rango  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por mes / por lote                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/reports"
	"github.com/jhoicas/Lotes-api/internal/domain"
)

var _ reports.PDFRenderer = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var monthNames = [...]string{"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFRenderer usando Maroto v2.
type MarotoReportGenerator struct {
	business string
	now      func() time.Time
}

// NewMarotoReportGenerator construye el generador. business aparece en el encabezado.
func NewMarotoReportGenerator(business string) *MarotoReportGenerator {
	return &MarotoReportGenerator{business: business, now: time.Now}
}

// RenderProceedsVsExpenses ingresos, gastos operativos, otros gastos y utilidad por mes.
func (g *MarotoReportGenerator) RenderProceedsVsExpenses(r domain.DateRange, rep *dto.ProceedsVsExpensesReport) ([]byte, error) {
	m := g.document("Ingresos vs gastos")

	period := fmt.Sprintf("%s al %s", r.Start.Format("02/01/2006"), r.End.Format("02/01/2006"))
	m.AddRows(headerRow(g.business, "INGRESOS VS GASTOS", period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		headerCell{"Mes", 2, align.Left},
		headerCell{"Ingresos", 3, align.Right},
		headerCell{"Operativos", 2, align.Right},
		headerCell{"Otros", 2, align.Right},
		headerCell{"Utilidad", 3, align.Right},
	))
	var proceeds, operational, other, utility decimal.Decimal
	for i, month := range rep.Months {
		m.AddRows(row.New(7).Add(
			cell(monthName(month), 2, align.Left, nil),
			cell(money(rep.Proceeds[i]), 3, align.Right, nil),
			cell(money(rep.Operational[i]), 2, align.Right, nil),
			cell(money(rep.Other[i]), 2, align.Right, nil),
			cell(money(rep.Utility[i]), 3, align.Right, signColor(rep.Utility[i])),
		))
		proceeds = proceeds.Add(rep.Proceeds[i])
		operational = operational.Add(rep.Operational[i])
		other = other.Add(rep.Other[i])
		utility = utility.Add(rep.Utility[i])
	}
	if len(rep.Months) == 0 {
		m.AddRows(emptyRow("Sin movimientos en el período"))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		boldCell("TOTAL", 2, align.Left, colorPrimary),
		boldCell(money(proceeds), 3, align.Right, nil),
		boldCell(money(operational), 2, align.Right, nil),
		boldCell(money(other), 2, align.Right, nil),
		boldCell(money(utility), 3, align.Right, nonNil(signColor(utility), colorPrimary)),
	))
	m.AddRows(g.footerRows()...)

	return generate(m)
}

// RenderLotProfitability gastos asignados e ingresos por lote.
func (g *MarotoReportGenerator) RenderLotProfitability(rep *dto.LotProfitabilityReport) ([]byte, error) {
	m := g.document("Rentabilidad por lote")

	m.AddRows(headerRow(g.business, "RENTABILIDAD POR LOTE", fmt.Sprintf("Últimos %d lotes", len(rep.LotCodes))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		headerCell{"Lote", 3, align.Left},
		headerCell{"Gastos", 3, align.Right},
		headerCell{"Ingresos", 3, align.Right},
		headerCell{"Margen", 3, align.Right},
	))
	for i, code := range rep.LotCodes {
		margin := rep.ProceedsTotals[i].Sub(rep.ExpenseTotals[i])
		m.AddRows(row.New(7).Add(
			cell(code, 3, align.Left, nil),
			cell(money(rep.ExpenseTotals[i]), 3, align.Right, nil),
			cell(money(rep.ProceedsTotals[i]), 3, align.Right, nil),
			cell(money(margin), 3, align.Right, signColor(margin)),
		))
	}
	if len(rep.LotCodes) == 0 {
		m.AddRows(emptyRow("No hay lotes activos"))
	}
	m.AddRows(g.footerRows()...)

	return generate(m)
}

func (g *MarotoReportGenerator) document(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.business, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + subtítulo (der).
func headerRow(business, title, subtitle string) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(nonEmpty(business, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de la tabla con fondo primario.
func tableHeaderRow(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cell(s string, size int, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color}))
}

func boldCell(s string, size int, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: a, Top: 1, Left: 1, Right: 1, Color: color}))
}

func emptyRow(msg string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 3}),
	))
}

func (g *MarotoReportGenerator) footerRows() []core.Row {
	return []core.Row{
		line.NewRow(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(6).Add(col.New(12).Add(
			text.New("Generado el "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 7, Color: colorGray, Top: 1, Align: align.Right,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonNil(c, fallback *props.Color) *props.Color {
	if c != nil {
		return c
	}
	return fallback
}

// signColor rojo para negativos, nil (color por defecto) en otro caso.
func signColor(d decimal.Decimal) *props.Color {
	if d.IsNegative() {
		return colorNegative
	}
	return nil
}

func monthName(m int) string {
	if m >= 1 && m <= 12 {
		return monthNames[m]
	}
	return fmt.Sprintf("Mes %d", m)
}

// money formatea en pesos sin decimales: -1234567.6 → "-$1.234.568".
func money(d decimal.Decimal) string {
	s := d.StringFixed(0)
	if s == "-0" {
		s = "0"
	}
	if len(s) > 0 && s[0] == '-' {
		return "-$" + formatMoney(s[1:])
	}
	return "$" + formatMoney(s)
}

// formatMoney inserta puntos de miles en un string numérico sin signo ni decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
