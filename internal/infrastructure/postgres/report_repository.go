package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/report"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// monthlyTarget tabla, alias y columna sumada de cada origen. Nunca se arma desde la entrada.
type monthlyTarget struct {
	table, alias, column string
}

var monthlyTargets = map[repository.MonthlySource]monthlyTarget{
	repository.SourceSales:       {table: "sales", alias: "s", column: "total_price"},
	repository.SourceLotExpenses: {table: "lot_expenses", alias: "le", column: "value"},
	repository.SourceExpenses:    {table: "expenses", alias: "e", column: "value"},
}

// ReportRepo consultas de solo lectura para los reportes financieros.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// inRange consulta activa de la tabla restringida a created_at dentro del rango (ambos extremos incluidos).
func inRange(table, alias string, r domain.DateRange) *activeQuery {
	return newActiveQuery(table, alias).Where(alias+".created_at BETWEEN ? AND ?", r.Start, r.End)
}

// ── Series mensuales ─────────────────────────────────────────────────────────

// MonthlySum suma por mes calendario. Los meses sin filas no aparecen.
func (r *ReportRepo) MonthlySum(ctx context.Context, mq repository.MonthlyQuery) ([]report.MonthlyTotal, error) {
	t, ok := monthlyTargets[mq.Source]
	if !ok {
		return nil, fmt.Errorf("%w: origen %s", domain.ErrInvalidInput, mq.Source)
	}
	aq := inRange(t.table, t.alias, mq.Range)
	if mq.ExcludeType != "" && mq.Source == repository.SourceExpenses {
		aq.Where(t.alias+".type <> ?", mq.ExcludeType)
	}
	month := fmt.Sprintf("EXTRACT(MONTH FROM %s.created_at AT TIME ZONE 'UTC')::int", t.alias)
	sql, args := aq.Aggregate(
		fmt.Sprintf("%s AS month, COALESCE(SUM(%s.%s), 0) AS total", month, t.alias, t.column),
		"GROUP BY month ORDER BY month ASC",
	)

	op := "report.MonthlySum " + mq.Source.String()
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	out := []report.MonthlyTotal{}
	for rows.Next() {
		var m report.MonthlyTotal
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, wrapErr(op+" scan", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

// ── Totales del período ──────────────────────────────────────────────────────

func (r *ReportRepo) sum(ctx context.Context, aq *activeQuery, expr, op string) (decimal.Decimal, error) {
	sql, args := aq.Aggregate("COALESCE(SUM("+expr+"), 0)", "")
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, wrapErr(op, err)
	}
	return total, nil
}

func (r *ReportRepo) count(ctx context.Context, aq *activeQuery, op string) (int, error) {
	sql, args := aq.Count()
	var n int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, wrapErr(op, err)
	}
	return n, nil
}

// SumLotLiters litros producidos en el rango.
func (r *ReportRepo) SumLotLiters(ctx context.Context, dr domain.DateRange) (decimal.Decimal, error) {
	return r.sum(ctx, inRange("lots", "l", dr), "l.quantity_liters", "report.SumLotLiters")
}

// SumExpensesByType gastos generales de un tipo.
func (r *ReportRepo) SumExpensesByType(ctx context.Context, expenseType string, dr domain.DateRange) (decimal.Decimal, error) {
	aq := inRange("expenses", "e", dr).Where("e.type = ?", expenseType)
	return r.sum(ctx, aq, "e.value", "report.SumExpensesByType")
}

// SumLotExpenses gastos asignados a lotes (operativos).
func (r *ReportRepo) SumLotExpenses(ctx context.Context, dr domain.DateRange) (decimal.Decimal, error) {
	return r.sum(ctx, inRange("lot_expenses", "le", dr), "le.value", "report.SumLotExpenses")
}

// SumProceeds ingresos por ventas.
func (r *ReportRepo) SumProceeds(ctx context.Context, dr domain.DateRange) (decimal.Decimal, error) {
	return r.sum(ctx, inRange("sales", "s", dr), "s.total_price", "report.SumProceeds")
}

// CountSales cantidad de ventas.
func (r *ReportRepo) CountSales(ctx context.Context, dr domain.DateRange) (int, error) {
	return r.count(ctx, inRange("sales", "s", dr), "report.CountSales")
}

// CountNewClients clientes creados en el rango.
func (r *ReportRepo) CountNewClients(ctx context.Context, dr domain.DateRange) (int, error) {
	return r.count(ctx, inRange("clients", "c", dr), "report.CountNewClients")
}

// ── Rentabilidad por lote ────────────────────────────────────────────────────

// LotProfitability una fila por lote: los hijos se suman en subconsultas, así un lote sin
// asignaciones o sin ventas sale con 0 y los tres arreglos del reporte no se desalinean.
func (r *ReportRepo) LotProfitability(ctx context.Context, limit int) ([]report.LotTotals, error) {
	const expr = `l.id, l.code,
	    COALESCE((SELECT SUM(le.value) FROM lot_expenses le WHERE le.lot_id = l.id AND le.active = true), 0),
	    COALESCE((SELECT SUM(s.total_price) FROM sales s WHERE s.lot_id = l.id AND s.active = true), 0)`
	sql, args := newActiveQuery("lots", "l").Aggregate(expr, "ORDER BY l.created_at DESC LIMIT ?", limit)

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr("report.LotProfitability", err)
	}
	defer rows.Close()

	out := make([]report.LotTotals, 0, limit)
	for rows.Next() {
		var t report.LotTotals
		if err := rows.Scan(&t.LotID, &t.Code, &t.ExpenseTotal, &t.ProceedsTotal); err != nil {
			return nil, wrapErr("report.LotProfitability scan", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("report.LotProfitability", err)
	}
	return out, nil
}
