// Package reports es el motor de reportes financieros: costo por lote, totales por período,
// ingresos vs gastos por mes y rentabilidad de los lotes recientes.
// Todo es de solo lectura y se recalcula en cada llamada desde las filas activas.
package reports

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// Facade reportes con nombre, recibiendo fechas YYYY-MM-DD. Solo traduce parámetros;
// los errores de las capas inferiores se devuelven sin cambios.
type Facade struct {
	repo    repository.ReportRepository
	costing *LotCosting
	periods *PeriodAggregator
	summary *SummaryComposer
	pdf     PDFRenderer
}

// NewFacade arma el motor completo. pdf puede ser nil si no se exponen las variantes PDF.
func NewFacade(repo repository.ReportRepository, lots repository.LotRepository, pdf PDFRenderer, lotsLimit int) *Facade {
	periods := NewPeriodAggregator(repo)
	return &Facade{
		repo:    repo,
		costing: NewLotCosting(lots, repo, lotsLimit),
		periods: periods,
		summary: NewSummaryComposer(periods),
		pdf:     pdf,
	}
}

// Production litros producidos en el rango.
func (f *Facade) Production(ctx context.Context, start, end string) (*dto.ProductionReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return f.costing.ProductionTotals(ctx, r)
}

// AdminExpenses total de gastos administrativos.
func (f *Facade) AdminExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error) {
	return f.expensesByType(ctx, entity.ExpenseTypeAdministrative, start, end)
}

// AdvertisingExpenses total de gastos de publicidad.
func (f *Facade) AdvertisingExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error) {
	return f.expensesByType(ctx, entity.ExpenseTypeAdvertising, start, end)
}

// OtherExpenses total de gastos de tipo otros.
func (f *Facade) OtherExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error) {
	return f.expensesByType(ctx, entity.ExpenseTypeOther, start, end)
}

func (f *Facade) expensesByType(ctx context.Context, expenseType, start, end string) (*dto.AmountReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	total, err := f.repo.SumExpensesByType(ctx, expenseType, r)
	if err != nil {
		return nil, err
	}
	return &dto.AmountReport{Total: total}, nil
}

// OperationalExpenses total de gastos asignados a lotes en el rango.
func (f *Facade) OperationalExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	total, err := f.repo.SumLotExpenses(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.AmountReport{Total: total}, nil
}

// SaleCount número de ventas activas en el rango.
func (f *Facade) SaleCount(ctx context.Context, start, end string) (*dto.CountReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	n, err := f.repo.CountSales(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.CountReport{Count: n}, nil
}

// Proceeds ingresos por ventas en el rango.
func (f *Facade) Proceeds(ctx context.Context, start, end string) (*dto.AmountReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	total, err := f.repo.SumProceeds(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.AmountReport{Total: total}, nil
}

// NewClients clientes activos creados en el rango.
func (f *Facade) NewClients(ctx context.Context, start, end string) (*dto.CountReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	n, err := f.repo.CountNewClients(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.CountReport{Count: n}, nil
}

// ProceedsVsExpenses series mensuales de ingresos, gastos operativos, otros gastos y utilidad.
func (f *Facade) ProceedsVsExpenses(ctx context.Context, start, end string) (*dto.ProceedsVsExpensesReport, error) {
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return f.summary.ProceedsVsExpenses(ctx, r)
}

// LotProfitability gastos y ventas de los lotes más recientes.
func (f *Facade) LotProfitability(ctx context.Context) (*dto.LotProfitabilityReport, error) {
	return f.costing.ProfitabilitySnapshot(ctx)
}

// LotCost lote con sus gastos asignados y el costo acumulado.
func (f *Facade) LotCost(ctx context.Context, lotID string) (*dto.LotCostResponse, error) {
	return f.costing.LotWithExpenses(ctx, lotID)
}

// ProceedsVsExpensesPDF versión PDF de ProceedsVsExpenses.
func (f *Facade) ProceedsVsExpensesPDF(ctx context.Context, start, end string) ([]byte, error) {
	if f.pdf == nil {
		return nil, domain.ErrNotFound
	}
	r, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	rep, err := f.summary.ProceedsVsExpenses(ctx, r)
	if err != nil {
		return nil, err
	}
	return f.pdf.RenderProceedsVsExpenses(r, rep)
}

// LotProfitabilityPDF versión PDF de LotProfitability.
func (f *Facade) LotProfitabilityPDF(ctx context.Context) ([]byte, error) {
	if f.pdf == nil {
		return nil, domain.ErrNotFound
	}
	rep, err := f.costing.ProfitabilitySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return f.pdf.RenderLotProfitability(rep)
}
