package repository

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// LotExpenseRepository define el puerto de persistencia para las asignaciones gasto-lote.
type LotExpenseRepository interface {
	Create(ctx context.Context, assignment *entity.LotExpense) error
	GetByID(ctx context.Context, id string) (*entity.LotExpense, error)
	Update(ctx context.Context, assignment *entity.LotExpense) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Page) ([]*entity.LotExpense, int, error)
}
