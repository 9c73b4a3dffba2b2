package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	apphttp "github.com/jhoicas/Lotes-api/internal/interfaces/http"
	"github.com/jhoicas/Lotes-api/pkg/logger"
)

// fakeReports valida el rango igual que la fachada real y devuelve valores fijos.
type fakeReports struct {
	err       error
	lastStart string
	lastEnd   string
	lastLotID string
}

func (f *fakeReports) check(start, end string) error {
	f.lastStart, f.lastEnd = start, end
	if f.err != nil {
		return f.err
	}
	_, err := domain.ParseDateRange(start, end)
	return err
}

func (f *fakeReports) amount(start, end, v string) (*dto.AmountReport, error) {
	if err := f.check(start, end); err != nil {
		return nil, err
	}
	return &dto.AmountReport{Total: decimal.RequireFromString(v)}, nil
}

func (f *fakeReports) Production(_ context.Context, start, end string) (*dto.ProductionReport, error) {
	if err := f.check(start, end); err != nil {
		return nil, err
	}
	return &dto.ProductionReport{TotalLiters: decimal.RequireFromString("1500.5")}, nil
}
func (f *fakeReports) AdminExpenses(_ context.Context, s, e string) (*dto.AmountReport, error) {
	return f.amount(s, e, "100")
}
func (f *fakeReports) AdvertisingExpenses(_ context.Context, s, e string) (*dto.AmountReport, error) {
	return f.amount(s, e, "200")
}
func (f *fakeReports) OtherExpenses(_ context.Context, s, e string) (*dto.AmountReport, error) {
	return f.amount(s, e, "300")
}
func (f *fakeReports) OperationalExpenses(_ context.Context, s, e string) (*dto.AmountReport, error) {
	return f.amount(s, e, "400")
}
func (f *fakeReports) Proceeds(_ context.Context, s, e string) (*dto.AmountReport, error) {
	return f.amount(s, e, "500")
}
func (f *fakeReports) SaleCount(_ context.Context, s, e string) (*dto.CountReport, error) {
	if err := f.check(s, e); err != nil {
		return nil, err
	}
	return &dto.CountReport{Count: 7}, nil
}
func (f *fakeReports) NewClients(_ context.Context, s, e string) (*dto.CountReport, error) {
	if err := f.check(s, e); err != nil {
		return nil, err
	}
	return &dto.CountReport{Count: 2}, nil
}
func (f *fakeReports) ProceedsVsExpenses(_ context.Context, s, e string) (*dto.ProceedsVsExpensesReport, error) {
	if err := f.check(s, e); err != nil {
		return nil, err
	}
	return &dto.ProceedsVsExpensesReport{
		Months:      []int{1},
		Proceeds:    []decimal.Decimal{decimal.NewFromInt(1000)},
		Operational: []decimal.Decimal{decimal.NewFromInt(300)},
		Other:       []decimal.Decimal{decimal.NewFromInt(200)},
		Utility:     []decimal.Decimal{decimal.NewFromInt(500)},
	}, nil
}
func (f *fakeReports) ProceedsVsExpensesPDF(_ context.Context, s, e string) ([]byte, error) {
	if err := f.check(s, e); err != nil {
		return nil, err
	}
	return []byte("%PDF-1.3 fake"), nil
}
func (f *fakeReports) LotProfitability(context.Context) (*dto.LotProfitabilityReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.LotProfitabilityReport{LotCodes: []string{"L-1"}}, nil
}
func (f *fakeReports) LotProfitabilityPDF(context.Context) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), f.err
}
func (f *fakeReports) LotCost(_ context.Context, lotID string) (*dto.LotCostResponse, error) {
	f.lastLotID = lotID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.LotCostResponse{ExpenseTotal: decimal.NewFromInt(500)}, nil
}

// newReportApp monta el router completo con el fake; el resto de casos de uso no se tocan.
func newReportApp(t *testing.T, facade *fakeReports) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		Reports:   facade,
		Page:      apphttp.PageConfig{DefaultLimit: 10, MaxLimit: 100},
		JWTSecret: testJWTSecret,
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, role string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

const rangoEnero = "?start_date=2024-01-01&end_date=2024-01-31"

func TestReportRoutes_Totales(t *testing.T) {
	cases := map[string]string{
		"/api/lots/report/production":      `"total_liters":"1500.5"`,
		"/api/expenses/report/admin":       `"total":"100"`,
		"/api/expenses/report/advertising": `"total":"200"`,
		"/api/expenses/report/other":       `"total":"300"`,
		"/api/expenses/report/operational": `"total":"400"`,
		"/api/sales/report/proceeds":       `"total":"500"`,
		"/api/sales/report":                `"count":7`,
		"/api/clients/report/new":          `"count":2`,
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			facade := &fakeReports{}
			resp, body := get(t, newReportApp(t, facade), path+rangoEnero, "vendedor")

			assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
			assert.Contains(t, string(body), want)
			assert.Equal(t, "2024-01-01", facade.lastStart)
			assert.Equal(t, "2024-01-31", facade.lastEnd)
		})
	}
}

func TestReportRoutes_RangoInvalido400(t *testing.T) {
	cases := []string{
		"",
		"?start_date=2024-02-01&end_date=2024-01-01",
		"?start_date=01/01/2024&end_date=2024-01-31",
	}
	for _, q := range cases {
		resp, body := get(t, newReportApp(t, &fakeReports{}), "/api/sales/report/proceeds"+q, "admin")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %q", q)

		var e dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "VALIDATION", e.Code)
	}
}

func TestReportRoutes_ErrorAlmacen500Opaco(t *testing.T) {
	cause := fmt.Errorf("%w: sum: %w", domain.ErrUpstream, errors.New("connection refused"))
	resp, body := get(t, newReportApp(t, &fakeReports{err: cause}), "/api/sales/report/abstract/proceeds/expenses"+rangoEnero, "admin")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "connection refused", "la causa no debe filtrarse al cliente")
	assert.Contains(t, string(body), "INTERNAL")
}

func TestReportRoutes_ProceedsVsExpensesJSON(t *testing.T) {
	resp, body := get(t, newReportApp(t, &fakeReports{}), "/api/sales/report/abstract/proceeds/expenses"+rangoEnero, "vendedor")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string][]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, []any{float64(1)}, out["months"])
	assert.Equal(t, []any{"500"}, out["utility"])
}

func TestReportRoutes_PDF(t *testing.T) {
	for _, path := range []string{
		"/api/sales/report/abstract/proceeds/expenses/pdf" + rangoEnero,
		"/api/lots/report/expenses-proceeds/pdf",
	} {
		resp, body := get(t, newReportApp(t, &fakeReports{}), path, "vendedor")
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
		assert.True(t, len(body) > 4 && string(body[:4]) == "%PDF")
	}
}

func TestReportRoutes_LotCost(t *testing.T) {
	facade := &fakeReports{}
	resp, body := get(t, newReportApp(t, facade), "/api/lots/report/cost/abc-123", "vendedor")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", facade.lastLotID)
	assert.Contains(t, string(body), `"expense_total":"500"`)

	resp, _ = get(t, newReportApp(t, &fakeReports{err: domain.ErrNotFound}), "/api/lots/report/cost/nope", "vendedor")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportRoutes_SinToken401(t *testing.T) {
	app := newReportApp(t, &fakeReports{})
	req := httptest.NewRequest(http.MethodGet, "/api/lots/report/expenses-proceeds", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_EscrituraExigeAdmin(t *testing.T) {
	app := newReportApp(t, &fakeReports{})
	req := httptest.NewRequest(http.MethodDelete, "/api/lots/abc", nil)
	req.Header.Set("Authorization", tokenForRole(t, "vendedor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
