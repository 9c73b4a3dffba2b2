package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/pkg/logger"
)

// internalMessage lo único que ve el cliente ante una falla no corregible.
const internalMessage = "error inesperado, revise los logs del servidor"

// ErrorHandler traduce los errores que devuelven los handlers a respuestas JSON.
// Los errores del dominio conservan su mensaje; el resto se registra con su causa y sale como 500 opaco.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code := classify(err)
		if status == fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
			return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: internalMessage})
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message(err)})
	}
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, "HTTP_ERROR"
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusInternalServerError, "INTERNAL"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func message(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		return "cuenta inactiva o suspendida"
	}
	return err.Error()
}
