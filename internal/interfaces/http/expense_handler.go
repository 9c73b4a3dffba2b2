package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/usecase"
)

// ExpenseHandler gastos generales (protegido).
type ExpenseHandler struct {
	uc   *usecase.ExpenseUseCase
	page PageConfig
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, page PageConfig) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, page: page}
}

// Create godoc
// @Summary      Crear gasto
// @Description  Si existe un gasto inactivo con la misma descripción se reactiva.
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
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
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ExpenseResponse]
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
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

// SearchByType godoc
// @Summary      Gastos de un tipo
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        term  path  string  true  "administrativo | publicidad | otros | operativos"
// @Success      200  {object}  dto.ListResponse[dto.ExpenseResponse]
// @Router       /api/expenses/type/{term} [get]
func (h *ExpenseHandler) SearchByType(c *fiber.Ctx) error {
	page, err := pageParams(c, h.page)
	if err != nil {
		return err
	}
	out, err := h.uc.SearchByType(c.Context(), c.Params("term"), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener gasto
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Description  No modifica el valor ya copiado en las asignaciones a lotes.
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del gasto"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.ExpenseResponse
// @Router       /api/expenses/{id} [patch]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
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
// @Summary      Desactivar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
