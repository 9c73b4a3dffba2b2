package reports

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/report"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// PeriodAggregator totales por mes calendario sobre ventas, asignaciones a lotes o gastos.
type PeriodAggregator struct {
	repo repository.ReportRepository
}

// NewPeriodAggregator construye el agregador.
func NewPeriodAggregator(repo repository.ReportRepository) *PeriodAggregator {
	return &PeriodAggregator{repo: repo}
}

// MonthlySum valida el rango y el origen y delega la agrupación en el repositorio.
func (a *PeriodAggregator) MonthlySum(ctx context.Context, q repository.MonthlyQuery) ([]report.MonthlyTotal, error) {
	if err := q.Range.Validate(); err != nil {
		return nil, err
	}
	switch q.Source {
	case repository.SourceSales, repository.SourceLotExpenses:
		if q.ExcludeType != "" {
			return nil, domain.ErrInvalidInput
		}
	case repository.SourceExpenses:
	default:
		return nil, domain.ErrInvalidInput
	}
	return a.repo.MonthlySum(ctx, q)
}

// Proceeds suma de sales.total_price por mes.
func (a *PeriodAggregator) Proceeds(ctx context.Context, r domain.DateRange) ([]report.MonthlyTotal, error) {
	return a.MonthlySum(ctx, repository.MonthlyQuery{Source: repository.SourceSales, Range: r})
}

// Operational suma de lot_expenses.value por mes.
func (a *PeriodAggregator) Operational(ctx context.Context, r domain.DateRange) ([]report.MonthlyTotal, error) {
	return a.MonthlySum(ctx, repository.MonthlyQuery{Source: repository.SourceLotExpenses, Range: r})
}

// Other suma de expenses.value por mes, excluyendo los gastos de tipo operativos.
func (a *PeriodAggregator) Other(ctx context.Context, r domain.DateRange) ([]report.MonthlyTotal, error) {
	return a.MonthlySum(ctx, repository.MonthlyQuery{
		Source:      repository.SourceExpenses,
		Range:       r,
		ExcludeType: entity.ExpenseTypeOperational,
	})
}
