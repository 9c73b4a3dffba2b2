package http

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/reports"
)

// ReportFacade operaciones de reportes que expone la API. Lo implementa *reports.Facade.
type ReportFacade interface {
	Production(ctx context.Context, start, end string) (*dto.ProductionReport, error)
	AdminExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error)
	AdvertisingExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error)
	OtherExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error)
	OperationalExpenses(ctx context.Context, start, end string) (*dto.AmountReport, error)
	Proceeds(ctx context.Context, start, end string) (*dto.AmountReport, error)
	SaleCount(ctx context.Context, start, end string) (*dto.CountReport, error)
	NewClients(ctx context.Context, start, end string) (*dto.CountReport, error)
	ProceedsVsExpenses(ctx context.Context, start, end string) (*dto.ProceedsVsExpensesReport, error)
	ProceedsVsExpensesPDF(ctx context.Context, start, end string) ([]byte, error)
	LotProfitability(ctx context.Context) (*dto.LotProfitabilityReport, error)
	LotProfitabilityPDF(ctx context.Context) ([]byte, error)
	LotCost(ctx context.Context, lotID string) (*dto.LotCostResponse, error)
}

var _ ReportFacade = (*reports.Facade)(nil)

type amountFunc func(ctx context.Context, start, end string) (*dto.AmountReport, error)
