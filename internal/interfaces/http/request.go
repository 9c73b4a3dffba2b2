package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lotes-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PageConfig límites de paginación del borde HTTP.
type PageConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// parseBody decodifica el JSON y valida los tags `validate`. Cualquier falla es ErrInvalidInput.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// pageParams lee limit/offset. Sin limit usa el default; por encima del máximo se recorta.
func pageParams(c *fiber.Ctx, cfg PageConfig) (domain.Page, error) {
	limit := c.QueryInt("limit", cfg.DefaultLimit)
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	return domain.NewPage(limit, c.QueryInt("offset", 0))
}

// dateParams fechas del reporte (YYYY-MM-DD); el facade las valida.
func dateParams(c *fiber.Ctx) (start, end string) {
	return c.Query("start_date"), c.Query("end_date")
}
