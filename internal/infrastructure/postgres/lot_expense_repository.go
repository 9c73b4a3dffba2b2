package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.LotExpenseRepository = (*LotExpenseRepo)(nil)

const lotExpenseColumns = `le.id, le.lot_id, le.expense_id, le.value, le.active, le.created_at, le.updated_at`

// LotExpenseRepo asignaciones gasto-lote sobre PostgreSQL (usable con pool o tx).
type LotExpenseRepo struct {
	q Querier
}

// NewLotExpenseRepository construye el adaptador de persistencia para asignaciones.
func NewLotExpenseRepository(q Querier) *LotExpenseRepo {
	return &LotExpenseRepo{q: q}
}

func scanLotExpense(row pgx.Row) (*entity.LotExpense, error) {
	var a entity.LotExpense
	if err := row.Scan(&a.ID, &a.LotID, &a.ExpenseID, &a.Value, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste la asignación con el valor ya copiado del gasto.
func (r *LotExpenseRepo) Create(ctx context.Context, a *entity.LotExpense) error {
	query := `
		INSERT INTO lot_expenses (id, lot_id, expense_id, value, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, a.ID, a.LotID, a.ExpenseID, a.Value, a.Active, a.CreatedAt, a.UpdatedAt)
	return wrapErr("insert lot expense", err)
}

// GetByID obtiene una asignación activa.
func (r *LotExpenseRepo) GetByID(ctx context.Context, id string) (*entity.LotExpense, error) {
	return getActive(ctx, r.q, newActiveQuery("lot_expenses", "le").Where("le.id = ?", id), lotExpenseColumns, scanLotExpense, "get lot expense")
}

// Update cambia lote y/o valor de una asignación activa.
func (r *LotExpenseRepo) Update(ctx context.Context, a *entity.LotExpense) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE lot_expenses SET lot_id = $2, value = $3, updated_at = $4 WHERE id = $1 AND active = true`,
		a.ID, a.LotID, a.Value, a.UpdatedAt,
	)
	return expectOne(tag, err, "update lot expense")
}

// SoftDelete marca la asignación como inactiva; deja de sumar en costos y reportes.
func (r *LotExpenseRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.q, "lot_expenses", id, "delete lot expense")
}

// List lista asignaciones activas.
func (r *LotExpenseRepo) List(ctx context.Context, page domain.Page) ([]*entity.LotExpense, int, error) {
	return listActive(ctx, r.q, newActiveQuery("lot_expenses", "le"), lotExpenseColumns, page, scanLotExpense, "list lot expenses")
}
