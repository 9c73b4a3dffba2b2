package repository

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// Campos de búsqueda de lotes.
const (
	LotFieldCode = "code"
	LotFieldType = "typeLot"
)

// LotInclude relaciones a cargar junto al lote. Por defecto no se carga nada.
type LotInclude struct {
	Expenses bool // asignaciones activas, cada una con su Expense
}

// LotRepository define el puerto de persistencia para Lot (DIP).
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	GetByID(ctx context.Context, id string, include LotInclude) (*entity.Lot, error)
	Update(ctx context.Context, lot *entity.Lot) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Page) ([]*entity.Lot, int, error)
	Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Lot, int, error)
}
