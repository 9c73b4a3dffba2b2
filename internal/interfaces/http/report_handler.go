package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler reportes financieros y de producción (protegido, solo lectura).
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler construye el handler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// ── Totales por rango ────────────────────────────────────────────────────────

// Production godoc
// @Summary      Litros producidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.ProductionReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lots/report/production [get]
func (h *ReportHandler) Production(c *fiber.Ctx) error {
	start, end := dateParams(c)
	out, err := h.facade.Production(c.Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AdminExpenses godoc
// @Summary      Gastos administrativos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.AmountReport
// @Router       /api/expenses/report/admin [get]
func (h *ReportHandler) AdminExpenses(c *fiber.Ctx) error {
	return h.amount(c, h.facade.AdminExpenses)
}

// AdvertisingExpenses godoc
// @Summary      Gastos de publicidad
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.AmountReport
// @Router       /api/expenses/report/advertising [get]
func (h *ReportHandler) AdvertisingExpenses(c *fiber.Ctx) error {
	return h.amount(c, h.facade.AdvertisingExpenses)
}

// OtherExpenses godoc
// @Summary      Otros gastos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.AmountReport
// @Router       /api/expenses/report/other [get]
func (h *ReportHandler) OtherExpenses(c *fiber.Ctx) error {
	return h.amount(c, h.facade.OtherExpenses)
}

// OperationalExpenses godoc
// @Summary      Gastos operativos (asignados a lotes)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.AmountReport
// @Router       /api/expenses/report/operational [get]
func (h *ReportHandler) OperationalExpenses(c *fiber.Ctx) error {
	return h.amount(c, h.facade.OperationalExpenses)
}

// Proceeds godoc
// @Summary      Ingresos por ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.AmountReport
// @Router       /api/sales/report/proceeds [get]
func (h *ReportHandler) Proceeds(c *fiber.Ctx) error {
	return h.amount(c, h.facade.Proceeds)
}

// SaleCount godoc
// @Summary      Cantidad de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.CountReport
// @Router       /api/sales/report [get]
func (h *ReportHandler) SaleCount(c *fiber.Ctx) error {
	start, end := dateParams(c)
	out, err := h.facade.SaleCount(c.Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// NewClients godoc
// @Summary      Clientes nuevos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.CountReport
// @Router       /api/clients/report/new [get]
func (h *ReportHandler) NewClients(c *fiber.Ctx) error {
	start, end := dateParams(c)
	out, err := h.facade.NewClients(c.Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ── Resúmenes ────────────────────────────────────────────────────────────────

// ProceedsVsExpenses godoc
// @Summary      Ingresos vs gastos por mes
// @Description  Meses (1-12) presentes en alguna serie; los faltantes valen 0. utility = proceeds - (operational + other).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {object}  dto.ProceedsVsExpensesReport
// @Router       /api/sales/report/abstract/proceeds/expenses [get]
func (h *ReportHandler) ProceedsVsExpenses(c *fiber.Ctx) error {
	start, end := dateParams(c)
	out, err := h.facade.ProceedsVsExpenses(c.Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ProceedsVsExpensesPDF godoc
// @Summary      Ingresos vs gastos (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (incluido)"
// @Success      200  {file}  binary
// @Router       /api/sales/report/abstract/proceeds/expenses/pdf [get]
func (h *ReportHandler) ProceedsVsExpensesPDF(c *fiber.Ctx) error {
	start, end := dateParams(c)
	doc, err := h.facade.ProceedsVsExpensesPDF(c.Context(), start, end)
	if err != nil {
		return err
	}
	return sendPDF(c, fmt.Sprintf("ingresos-vs-gastos_%s_%s.pdf", start, end), doc)
}

// LotProfitability godoc
// @Summary      Gastos e ingresos de los lotes recientes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LotProfitabilityReport
// @Router       /api/lots/report/expenses-proceeds [get]
func (h *ReportHandler) LotProfitability(c *fiber.Ctx) error {
	out, err := h.facade.LotProfitability(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// LotProfitabilityPDF godoc
// @Summary      Rentabilidad por lote (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/lots/report/expenses-proceeds/pdf [get]
func (h *ReportHandler) LotProfitabilityPDF(c *fiber.Ctx) error {
	doc, err := h.facade.LotProfitabilityPDF(c.Context())
	if err != nil {
		return err
	}
	return sendPDF(c, "rentabilidad-lotes.pdf", doc)
}

// LotCost godoc
// @Summary      Costo acumulado de un lote
// @Description  Lote con sus gastos asignados activos, total y costo por litro.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotCostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/report/cost/{id} [get]
func (h *ReportHandler) LotCost(c *fiber.Ctx) error {
	out, err := h.facade.LotCost(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (h *ReportHandler) amount(c *fiber.Ctx, fn amountFunc) error {
	start, end := dateParams(c)
	out, err := fn(c.Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func sendPDF(c *fiber.Ctx, filename string, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
