package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/usecase"
)

// LotExpenseHandler asignaciones de gastos a lotes (protegido).
type LotExpenseHandler struct {
	uc   *usecase.LotExpenseUseCase
	page PageConfig
}

// NewLotExpenseHandler construye el handler.
func NewLotExpenseHandler(uc *usecase.LotExpenseUseCase, page PageConfig) *LotExpenseHandler {
	return &LotExpenseHandler{uc: uc, page: page}
}

// Create godoc
// @Summary      Asignar gasto a lote
// @Description  Copia el valor actual del gasto en la asignación.
// @Tags         expenses-per-lot
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotExpenseRequest  true  "lot_id y expense_id"
// @Success      201   {object}  dto.LotExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses-per-lot [post]
func (h *LotExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotExpenseRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         expenses-per-lot
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.LotExpenseResponse]
// @Router       /api/expenses-per-lot [get]
func (h *LotExpenseHandler) List(c *fiber.Ctx) error {
	page, err := pageParams(c, h.page)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener asignación
// @Tags         expenses-per-lot
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.LotExpenseResponse
// @Router       /api/expenses-per-lot/{id} [get]
func (h *LotExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar asignación
// @Tags         expenses-per-lot
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la asignación"
// @Param        body  body  dto.UpdateLotExpenseRequest  true  "lot_id y/o value"
// @Success      200  {object}  dto.LotExpenseResponse
// @Router       /api/expenses-per-lot/{id} [patch]
func (h *LotExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLotExpenseRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar asignación
// @Tags         expenses-per-lot
// @Security     Bearer
// @Param        id  path  string  true  "ID de la asignación"
// @Success      204
// @Router       /api/expenses-per-lot/{id} [delete]
func (h *LotExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
