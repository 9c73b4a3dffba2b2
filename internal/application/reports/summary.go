package reports

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/report"
)

// SummaryComposer ingresos vs gastos por mes.
type SummaryComposer struct {
	periods *PeriodAggregator
}

// NewSummaryComposer construye el compositor sobre un PeriodAggregator.
func NewSummaryComposer(periods *PeriodAggregator) *SummaryComposer {
	return &SummaryComposer{periods: periods}
}

// ProceedsVsExpenses ejecuta las tres agregaciones en paralelo y las combina por número de mes.
// La primera falla cancela las otras consultas y se devuelve sin cambios.
//
//  1. Proceeds    → ventas
//  2. Operational → asignaciones gasto-lote
//  3. Other       → gastos que no son operativos
func (c *SummaryComposer) ProceedsVsExpenses(ctx context.Context, r domain.DateRange) (*dto.ProceedsVsExpensesReport, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var proceeds, operational, other []report.MonthlyTotal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		proceeds, err = c.periods.Proceeds(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		operational, err = c.periods.Operational(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		other, err = c.periods.Other(gctx, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := report.ComposeSummary(proceeds, operational, other)
	return &dto.ProceedsVsExpensesReport{
		Months:      s.Months,
		Proceeds:    s.Proceeds,
		Operational: s.Operational,
		Other:       s.Other,
		Utility:     s.Utility,
	}, nil
}
