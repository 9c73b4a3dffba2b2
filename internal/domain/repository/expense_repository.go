package repository

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// ExpenseFieldType campo de búsqueda de gastos.
const ExpenseFieldType = "type"

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	// FindByDescription incluye inactivos (revivir un gasto borrado con la misma descripción).
	FindByDescription(ctx context.Context, description string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Page) ([]*entity.Expense, int, error)
	Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Expense, int, error)
}
