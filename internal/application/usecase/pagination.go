package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
)

// toList arma la respuesta paginada común a todos los listados.
func toList[E any, R any](list []E, total int, page domain.Page, conv func(E) R) (*dto.ListResponse[R], error) {
	pages, err := domain.PageCount(total, page.Limit)
	if err != nil {
		return nil, err
	}
	items := make([]R, 0, len(list))
	for _, e := range list {
		items = append(items, conv(e))
	}
	return &dto.ListResponse[R]{
		Items:  items,
		Total:  total,
		Pages:  pages,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// nonNegative valida montos que no pueden ser negativos.
func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return nil
}
