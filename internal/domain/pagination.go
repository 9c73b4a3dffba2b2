package domain

import "fmt"

// Page ventana de paginación ya validada (limit > 0, offset >= 0).
type Page struct {
	Limit  int
	Offset int
}

// NewPage valida limit/offset. No aplica defaults: eso es responsabilidad del borde HTTP.
func NewPage(limit, offset int) (Page, error) {
	if limit <= 0 {
		return Page{}, fmt.Errorf("%w: limit debe ser mayor que cero", ErrInvalidInput)
	}
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset no puede ser negativo", ErrInvalidInput)
	}
	return Page{Limit: limit, Offset: offset}, nil
}

// PageCount número de páginas = ceil(total/limit).
func PageCount(total, limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: limit debe ser mayor que cero", ErrInvalidInput)
	}
	if total <= 0 {
		return 0, nil
	}
	return (total + limit - 1) / limit, nil
}
