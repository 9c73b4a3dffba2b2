package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `e.id, e.description, e.value, e.type, e.active, e.created_at, e.updated_at`

var expenseSearch = map[string]searchColumn{
	repository.ExpenseFieldType: {Expr: "e.type", Text: true},
}

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Description, &e.Value, &e.Type, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, description, value, type, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Description, e.Value, e.Type, e.Active, e.CreatedAt, e.UpdatedAt)
	return wrapErr("insert expense", err)
}

// GetByID obtiene un gasto activo.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	return getActive(ctx, r.q, newActiveQuery("expenses", "e").Where("e.id = ?", id), expenseColumns, scanExpense, "get expense")
}

// FindByDescription busca por descripción normalizada incluyendo inactivos.
func (r *ExpenseRepo) FindByDescription(ctx context.Context, description string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses e WHERE e.description = $1 LIMIT 1`
	e, err := scanExpense(r.q.QueryRow(ctx, query, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find expense by description", err)
	}
	return e, nil
}

// Update reescribe el gasto, incluido active. No toca lot_expenses.value.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	query := `
		UPDATE expenses SET description = $2, value = $3, type = $4, active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, e.ID, e.Description, e.Value, e.Type, e.Active, e.UpdatedAt)
	return expectOne(tag, err, "update expense")
}

// SoftDelete marca el gasto como inactivo.
func (r *ExpenseRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.q, "expenses", id, "delete expense")
}

// List lista gastos activos.
func (r *ExpenseRepo) List(ctx context.Context, page domain.Page) ([]*entity.Expense, int, error) {
	return listActive(ctx, r.q, newActiveQuery("expenses", "e"), expenseColumns, page, scanExpense, "list expenses")
}

// Search busca por tipo.
func (r *ExpenseRepo) Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Expense, int, error) {
	aq, err := newActiveQuery("expenses", "e").Filter(expenseSearch, filter)
	if err != nil {
		return nil, 0, err
	}
	return listActive(ctx, r.q, aq, expenseColumns, page, scanExpense, "search expenses")
}
