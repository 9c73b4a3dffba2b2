package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/report"
)

// MonthlySource origen de una agregación mensual. Cada origen fija tabla y columna sumada.
type MonthlySource int

const (
	SourceSales       MonthlySource = iota + 1 // sales.total_price
	SourceLotExpenses                          // lot_expenses.value
	SourceExpenses                             // expenses.value
)

func (s MonthlySource) String() string {
	switch s {
	case SourceSales:
		return "sales"
	case SourceLotExpenses:
		return "lot_expenses"
	case SourceExpenses:
		return "expenses"
	default:
		return "unknown"
	}
}

// MonthlyQuery parámetros de MonthlySum. ExcludeType solo aplica a SourceExpenses.
type MonthlyQuery struct {
	Source      MonthlySource
	Range       domain.DateRange
	ExcludeType string
}

// ReportRepository consultas de solo lectura para los reportes. Todas filtran active = true
// y devuelven 0 (no error) cuando no hay filas.
type ReportRepository interface {
	// MonthlySum agrupa por mes de created_at, en orden ascendente, omitiendo meses sin filas.
	MonthlySum(ctx context.Context, q MonthlyQuery) ([]report.MonthlyTotal, error)

	SumLotLiters(ctx context.Context, r domain.DateRange) (decimal.Decimal, error)
	SumExpensesByType(ctx context.Context, expenseType string, r domain.DateRange) (decimal.Decimal, error)
	SumLotExpenses(ctx context.Context, r domain.DateRange) (decimal.Decimal, error)
	SumProceeds(ctx context.Context, r domain.DateRange) (decimal.Decimal, error)
	CountSales(ctx context.Context, r domain.DateRange) (int, error)
	CountNewClients(ctx context.Context, r domain.DateRange) (int, error)

	// LotProfitability una fila por lote activo, los `limit` más recientes primero.
	LotProfitability(ctx context.Context, limit int) ([]report.LotTotals, error)
}
