package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para Client (protegido).
type ClientHandler struct {
	uc   *usecase.ClientUseCase
	page PageConfig
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, page PageConfig) *ClientHandler {
	return &ClientHandler{uc: uc, page: page}
}

// Create godoc
// @Summary      Crear cliente
// @Description  Si existe un cliente inactivo con el mismo email se reactiva con los datos nuevos.
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ClientResponse]
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
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

// Search godoc
// @Summary      Buscar clientes
// @Description  Un término numérico busca la cédula exacta; cualquier otro, el nombre parcial.
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        term  path  string  true  "Cédula o nombre"
// @Success      200  {object}  dto.ListResponse[dto.ClientResponse]
// @Router       /api/clients/search/{term} [get]
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	page, err := pageParams(c, h.page)
	if err != nil {
		return err
	}
	out, err := h.uc.Search(c.Context(), c.Params("term"), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cliente por ID o cédula
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        term  path  string  true  "UUID o cédula"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{term} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByTerm(c.Context(), c.Params("term"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [patch]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
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
// @Summary      Desactivar cliente
// @Tags         clients
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
