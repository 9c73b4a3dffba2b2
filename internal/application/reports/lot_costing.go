package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/usecase"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/report"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// DefaultLotsLimit lotes recientes incluidos en el reporte de rentabilidad.
const DefaultLotsLimit = 20

// LotCosting costo acumulado por lote y totales de producción.
type LotCosting struct {
	lots      repository.LotRepository
	repo      repository.ReportRepository
	lotsLimit int
}

// NewLotCosting construye el rollup. lotsLimit <= 0 usa DefaultLotsLimit.
func NewLotCosting(lots repository.LotRepository, repo repository.ReportRepository, lotsLimit int) *LotCosting {
	if lotsLimit <= 0 {
		lotsLimit = DefaultLotsLimit
	}
	return &LotCosting{lots: lots, repo: repo, lotsLimit: lotsLimit}
}

// LotWithExpenses lote activo con sus asignaciones activas (cada una con su gasto) y el costo sumado.
func (c *LotCosting) LotWithExpenses(ctx context.Context, lotID string) (*dto.LotCostResponse, error) {
	lot, err := c.lots.GetByID(ctx, lotID, repository.LotInclude{Expenses: true})
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	values := make([]decimal.Decimal, 0, len(lot.Expenses))
	expenses := make([]dto.LotExpenseResponse, 0, len(lot.Expenses))
	for _, a := range lot.Expenses {
		values = append(values, a.Value)
		expenses = append(expenses, *usecase.ToLotExpenseResponse(a))
	}
	cost := report.ComputeLotCost(lot.QuantityLiters, values)
	return &dto.LotCostResponse{
		LotResponse:  *usecase.ToLotResponse(lot),
		Expenses:     expenses,
		ExpenseTotal: cost.ExpenseTotal,
		CostPerLiter: cost.CostPerLiter,
	}, nil
}

// ProductionTotals litros de los lotes activos creados en el rango.
func (c *LotCosting) ProductionTotals(ctx context.Context, r domain.DateRange) (*dto.ProductionReport, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	liters, err := c.repo.SumLotLiters(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.ProductionReport{TotalLiters: liters}, nil
}

// ProfitabilitySnapshot gastos y ventas de los lotes más recientes, en arreglos alineados por índice.
func (c *LotCosting) ProfitabilitySnapshot(ctx context.Context) (*dto.LotProfitabilityReport, error) {
	rows, err := c.repo.LotProfitability(ctx, c.lotsLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) > c.lotsLimit {
		return nil, fmt.Errorf("%w: rentabilidad devolvió %d lotes, límite %d", domain.ErrUpstream, len(rows), c.lotsLimit)
	}
	p := report.BuildProfitability(rows)
	return &dto.LotProfitabilityReport{
		LotCodes:       p.LotCodes,
		ExpenseTotals:  p.ExpenseTotals,
		ProceedsTotals: p.ProceedsTotals,
	}, nil
}
