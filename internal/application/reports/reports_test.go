package reports_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/reports"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/report"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeReportRepo devuelve series fijas por origen y registra las consultas recibidas.
// MonthlySum se llama desde varias goroutines, por eso el mutex.
type fakeReportRepo struct {
	mu       sync.Mutex
	monthly  map[repository.MonthlySource][]report.MonthlyTotal
	errs     map[repository.MonthlySource]error
	queries  []repository.MonthlyQuery
	liters   decimal.Decimal
	sumErr   error
	lotRows  []report.LotTotals
	lastType string
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		monthly: map[repository.MonthlySource][]report.MonthlyTotal{},
		errs:    map[repository.MonthlySource]error{},
	}
}

func (f *fakeReportRepo) MonthlySum(_ context.Context, q repository.MonthlyQuery) ([]report.MonthlyTotal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if err := f.errs[q.Source]; err != nil {
		return nil, err
	}
	return f.monthly[q.Source], nil
}

func (f *fakeReportRepo) SumLotLiters(context.Context, domain.DateRange) (decimal.Decimal, error) {
	return f.liters, f.sumErr
}

func (f *fakeReportRepo) SumExpensesByType(_ context.Context, expenseType string, _ domain.DateRange) (decimal.Decimal, error) {
	f.lastType = expenseType
	return decimal.Zero, f.sumErr
}

func (f *fakeReportRepo) SumLotExpenses(context.Context, domain.DateRange) (decimal.Decimal, error) {
	return decimal.Zero, f.sumErr
}

func (f *fakeReportRepo) SumProceeds(context.Context, domain.DateRange) (decimal.Decimal, error) {
	return decimal.Zero, f.sumErr
}

func (f *fakeReportRepo) CountSales(context.Context, domain.DateRange) (int, error) {
	return 0, f.sumErr
}

func (f *fakeReportRepo) CountNewClients(context.Context, domain.DateRange) (int, error) {
	return 0, f.sumErr
}

func (f *fakeReportRepo) LotProfitability(_ context.Context, limit int) ([]report.LotTotals, error) {
	if len(f.lotRows) > limit {
		return f.lotRows[:limit], f.sumErr
	}
	return f.lotRows, f.sumErr
}

type fakeLotRepo struct {
	lots        map[string]*entity.Lot
	lastInclude repository.LotInclude
}

func (f *fakeLotRepo) Create(context.Context, *entity.Lot) error { return nil }
func (f *fakeLotRepo) GetByID(_ context.Context, id string, include repository.LotInclude) (*entity.Lot, error) {
	f.lastInclude = include
	l, ok := f.lots[id]
	if !ok || !l.Active {
		return nil, nil
	}
	return l, nil
}
func (f *fakeLotRepo) Update(context.Context, *entity.Lot) error { return nil }
func (f *fakeLotRepo) SoftDelete(context.Context, string) error  { return nil }
func (f *fakeLotRepo) List(context.Context, domain.Page) ([]*entity.Lot, int, error) {
	return nil, 0, nil
}
func (f *fakeLotRepo) Search(context.Context, domain.SearchFilter, domain.Page) ([]*entity.Lot, int, error) {
	return nil, 0, nil
}

type fakePDF struct {
	summary *dto.ProceedsVsExpensesReport
	lots    *dto.LotProfitabilityReport
}

func (f *fakePDF) RenderProceedsVsExpenses(_ domain.DateRange, rep *dto.ProceedsVsExpensesReport) ([]byte, error) {
	f.summary = rep
	return []byte("%PDF-summary"), nil
}

func (f *fakePDF) RenderLotProfitability(rep *dto.LotProfitabilityReport) ([]byte, error) {
	f.lots = rep
	return []byte("%PDF-lots"), nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strs(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, v := range ds {
		out[i] = v.String()
	}
	return out
}

func newFacade(repo *fakeReportRepo) *reports.Facade {
	return reports.NewFacade(repo, &fakeLotRepo{lots: map[string]*entity.Lot{}}, &fakePDF{}, 20)
}

var ctx = context.Background()

// ──────────────────────────────────────────────────────────────────────────────
// Rangos de fecha
// ──────────────────────────────────────────────────────────────────────────────

func TestFacade_RangoInvertidoEsInvalido(t *testing.T) {
	f := newFacade(newFakeReportRepo())
	const start, end = "2024-03-01", "2024-01-01"

	calls := map[string]func() error{
		"production":   func() error { _, err := f.Production(ctx, start, end); return err },
		"admin":        func() error { _, err := f.AdminExpenses(ctx, start, end); return err },
		"advertising":  func() error { _, err := f.AdvertisingExpenses(ctx, start, end); return err },
		"other":        func() error { _, err := f.OtherExpenses(ctx, start, end); return err },
		"operational":  func() error { _, err := f.OperationalExpenses(ctx, start, end); return err },
		"sale_count":   func() error { _, err := f.SaleCount(ctx, start, end); return err },
		"proceeds":     func() error { _, err := f.Proceeds(ctx, start, end); return err },
		"new_clients":  func() error { _, err := f.NewClients(ctx, start, end); return err },
		"summary":      func() error { _, err := f.ProceedsVsExpenses(ctx, start, end); return err },
		"summary_pdf":  func() error { _, err := f.ProceedsVsExpensesPDF(ctx, start, end); return err },
		"malformed":    func() error { _, err := f.Proceeds(ctx, "2024/01/01", "2024-02-01"); return err },
		"missing_date": func() error { _, err := f.SaleCount(ctx, "", "2024-02-01"); return err },
	}
	for name, call := range calls {
		assert.ErrorIs(t, call(), domain.ErrInvalidInput, name)
	}
}

func TestFacade_SinFilasDevuelveCero(t *testing.T) {
	repo := newFakeReportRepo()
	repo.liters = decimal.Zero
	f := newFacade(repo)

	prod, err := f.Production(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.True(t, prod.TotalLiters.IsZero())

	adv, err := f.AdvertisingExpenses(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.True(t, adv.Total.IsZero())
	assert.Equal(t, entity.ExpenseTypeAdvertising, repo.lastType)

	count, err := f.SaleCount(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 0, count.Count)

	s, err := f.ProceedsVsExpenses(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Empty(t, s.Months)
	assert.Empty(t, s.Utility)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos vs gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestProceedsVsExpenses_EneroFebrero(t *testing.T) {
	repo := newFakeReportRepo()
	repo.monthly[repository.SourceSales] = []report.MonthlyTotal{{Month: 1, Total: d("100")}, {Month: 2, Total: d("50")}}
	repo.monthly[repository.SourceLotExpenses] = []report.MonthlyTotal{{Month: 2, Total: d("20")}}
	repo.monthly[repository.SourceExpenses] = []report.MonthlyTotal{{Month: 1, Total: d("30")}}
	f := newFacade(repo)

	out, err := f.ProceedsVsExpenses(ctx, "2024-01-01", "2024-02-28")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, out.Months)
	assert.Equal(t, []string{"100", "50"}, strs(out.Proceeds))
	assert.Equal(t, []string{"0", "20"}, strs(out.Operational))
	assert.Equal(t, []string{"30", "0"}, strs(out.Other))
	assert.Equal(t, []string{"70", "30"}, strs(out.Utility))

	require.Len(t, repo.queries, 3)
	for _, q := range repo.queries {
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), q.Range.Start)
		assert.Equal(t, time.Date(2024, 2, 28, 23, 59, 59, 999999999, time.UTC), q.Range.End)
		if q.Source == repository.SourceExpenses {
			assert.Equal(t, entity.ExpenseTypeOperational, q.ExcludeType)
		} else {
			assert.Empty(t, q.ExcludeType)
		}
	}
}

func TestProceedsVsExpenses_ErrorSePropagaSinCambios(t *testing.T) {
	repo := newFakeReportRepo()
	cause := fmt.Errorf("%w: monthly lot_expenses: timeout", domain.ErrUpstream)
	repo.errs[repository.SourceLotExpenses] = cause
	f := newFacade(repo)

	_, err := f.ProceedsVsExpenses(ctx, "2024-01-01", "2024-02-28")
	require.Error(t, err)
	assert.Equal(t, cause, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

func TestProceedsVsExpensesPDF_UsaElMismoReporte(t *testing.T) {
	repo := newFakeReportRepo()
	repo.monthly[repository.SourceSales] = []report.MonthlyTotal{{Month: 5, Total: d("10")}}
	pdf := &fakePDF{}
	f := reports.NewFacade(repo, &fakeLotRepo{}, pdf, 20)

	out, err := f.ProceedsVsExpensesPDF(ctx, "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-summary"), out)
	require.NotNil(t, pdf.summary)
	assert.Equal(t, []int{5}, pdf.summary.Months)
}

func TestFacade_PDFNoConfigurado(t *testing.T) {
	f := reports.NewFacade(newFakeReportRepo(), &fakeLotRepo{}, nil, 20)

	_, err := f.LotProfitabilityPDF(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregador por período
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodAggregator_OrigenDesconocido(t *testing.T) {
	a := reports.NewPeriodAggregator(newFakeReportRepo())
	r, err := domain.ParseDateRange("2024-01-01", "2024-12-31")
	require.NoError(t, err)

	_, err = a.MonthlySum(ctx, repository.MonthlyQuery{Source: repository.MonthlySource(99), Range: r})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = a.MonthlySum(ctx, repository.MonthlyQuery{Source: repository.SourceSales, Range: r, ExcludeType: "otros"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPeriodAggregator_RangoInvertido(t *testing.T) {
	a := reports.NewPeriodAggregator(newFakeReportRepo())
	now := time.Now()

	_, err := a.Proceeds(ctx, domain.DateRange{Start: now, End: now.Add(-time.Hour)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo y rentabilidad por lote
// ──────────────────────────────────────────────────────────────────────────────

func TestLotProfitability_ArreglosDelMismoLargo(t *testing.T) {
	repo := newFakeReportRepo()
	for i := 0; i < 25; i++ {
		repo.lotRows = append(repo.lotRows, report.LotTotals{
			LotID:         fmt.Sprintf("l%d", i),
			Code:          fmt.Sprintf("L-%03d", i),
			ExpenseTotal:  decimal.NewFromInt(int64(i)),
			ProceedsTotal: decimal.Zero,
		})
	}
	f := newFacade(repo)

	out, err := f.LotProfitability(ctx)
	require.NoError(t, err)
	assert.Len(t, out.LotCodes, 20)
	assert.Len(t, out.ExpenseTotals, 20)
	assert.Len(t, out.ProceedsTotals, 20)
	assert.Equal(t, "L-007", out.LotCodes[7])
	assert.Equal(t, "7", out.ExpenseTotals[7].String())
}

func TestLotCost_SumaAsignacionesActivas(t *testing.T) {
	lots := &fakeLotRepo{lots: map[string]*entity.Lot{
		"l1": {
			ID: "l1", Code: "L-001", QuantityLiters: d("100"), Active: true,
			Expenses: []*entity.LotExpense{
				{ID: "a1", LotID: "l1", ExpenseID: "e1", Value: d("200"), Active: true,
					Expense: &entity.Expense{ID: "e1", Description: "botellas", Value: d("500"), Active: true}},
				{ID: "a2", LotID: "l1", ExpenseID: "e2", Value: d("50"), Active: true},
			},
		},
	}}
	f := reports.NewFacade(newFakeReportRepo(), lots, nil, 20)

	out, err := f.LotCost(ctx, "l1")
	require.NoError(t, err)
	assert.True(t, lots.lastInclude.Expenses)
	assert.Equal(t, "250", out.ExpenseTotal.String())
	assert.Equal(t, "2.5", out.CostPerLiter.String())
	require.Len(t, out.Expenses, 2)
	assert.Equal(t, "200", out.Expenses[0].Value.String())
	assert.Equal(t, "botellas", out.Expenses[0].Expense.Description)
}

func TestLotCost_LoteInactivo(t *testing.T) {
	lots := &fakeLotRepo{lots: map[string]*entity.Lot{"l1": {ID: "l1", Active: false}}}
	f := reports.NewFacade(newFakeReportRepo(), lots, nil, 20)

	_, err := f.LotCost(ctx, "l1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.LotCost(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLotCost_GastoDesactivadoCoincideConRentabilidad(t *testing.T) {
	lots := &fakeLotRepo{lots: map[string]*entity.Lot{
		"l1": {
			ID: "l1", Code: "L-001", QuantityLiters: d("50"), Active: true,
			Expenses: []*entity.LotExpense{
				{ID: "a1", LotID: "l1", ExpenseID: "e1", Value: d("120"), Active: true,
					Expense: &entity.Expense{ID: "e1", Description: "botellas", Active: true}},
				{ID: "a2", LotID: "l1", ExpenseID: "e2", Value: d("30"), Active: true,
					Expense: &entity.Expense{ID: "e2", Description: "etiquetas", Active: false}},
			},
		},
	}}
	repo := newFakeReportRepo()
	repo.lotRows = []report.LotTotals{{LotID: "l1", Code: "L-001", ExpenseTotal: d("150"), ProceedsTotal: d("400")}}
	f := reports.NewFacade(repo, lots, nil, 20)

	cost, err := f.LotCost(ctx, "l1")
	require.NoError(t, err)
	profit, err := f.LotProfitability(ctx)
	require.NoError(t, err)

	assert.Equal(t, "150", cost.ExpenseTotal.String())
	assert.Equal(t, "3", cost.CostPerLiter.String())
	require.Len(t, profit.ExpenseTotals, 1)
	assert.Equal(t, profit.ExpenseTotals[0].String(), cost.ExpenseTotal.String())
	require.Len(t, cost.Expenses, 2)
	assert.Equal(t, "etiquetas", cost.Expenses[1].Expense.Description)
}
