package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `l.id, l.code, l.quantity_liters, l.discount, l.discount_reason, l.type_lot, l.cost_liter,
	l.reused_bottles, l.lot_total_cost, l.active, l.created_at, l.updated_at`

var lotSearch = map[string]searchColumn{
	repository.LotFieldCode: {Expr: "l.code", Text: true},
	repository.LotFieldType: {Expr: "l.type_lot", Text: true},
}

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes.
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(&l.ID, &l.Code, &l.QuantityLiters, &l.Discount, &l.DiscountReason, &l.TypeLot, &l.CostLiter,
		&l.ReusedBottles, &l.LotTotalCost, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un nuevo lote.
func (r *LotRepo) Create(ctx context.Context, l *entity.Lot) error {
	query := `
		INSERT INTO lots (id, code, quantity_liters, discount, discount_reason, type_lot, cost_liter,
			reused_bottles, lot_total_cost, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.Code, l.QuantityLiters, l.Discount, l.DiscountReason, l.TypeLot, l.CostLiter,
		l.ReusedBottles, l.LotTotalCost, l.Active, l.CreatedAt, l.UpdatedAt,
	)
	return wrapErr("insert lot", err)
}

// GetByID obtiene un lote activo. Con include.Expenses carga sus asignaciones activas,
// cada una con su gasto aunque este ya esté desactivado: el valor de la asignación es propio.
func (r *LotRepo) GetByID(ctx context.Context, id string, include repository.LotInclude) (*entity.Lot, error) {
	lot, err := getActive(ctx, r.q, newActiveQuery("lots", "l").Where("l.id = ?", id), lotColumns, scanLot, "get lot")
	if err != nil || lot == nil || !include.Expenses {
		return lot, err
	}
	lot.Expenses, err = r.expenses(ctx, lot.ID)
	if err != nil {
		return nil, err
	}
	return lot, nil
}

// expenses mismo criterio que los reportes: solo cuenta le.active.
func (r *LotRepo) expenses(ctx context.Context, lotID string) ([]*entity.LotExpense, error) {
	query := `
		SELECT le.id, le.lot_id, le.expense_id, le.value, le.active, le.created_at, le.updated_at,
			e.id, e.description, e.value, e.type, e.active, e.created_at, e.updated_at
		FROM lot_expenses le
		LEFT JOIN expenses e ON e.id = le.expense_id
		WHERE le.active = true AND le.lot_id = $1
		ORDER BY le.created_at ASC`
	rows, err := r.q.Query(ctx, query, lotID)
	if err != nil {
		return nil, wrapErr("list lot expenses", err)
	}
	defer rows.Close()
	list := []*entity.LotExpense{}
	for rows.Next() {
		var a entity.LotExpense
		var e nullableExpense
		if err := rows.Scan(&a.ID, &a.LotID, &a.ExpenseID, &a.Value, &a.Active, &a.CreatedAt, &a.UpdatedAt,
			&e.ID, &e.Description, &e.Value, &e.Type, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, wrapErr("scan lot expense", err)
		}
		a.Expense = e.entity()
		list = append(list, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list lot expenses", err)
	}
	return list, nil
}

// nullableExpense columnas del LEFT JOIN; sin fila de gasto todas llegan NULL.
type nullableExpense struct {
	ID          *string
	Description *string
	Value       *decimal.Decimal
	Type        *string
	Active      *bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

func (n nullableExpense) entity() *entity.Expense {
	if n.ID == nil {
		return nil
	}
	e := &entity.Expense{ID: *n.ID}
	if n.Description != nil {
		e.Description = *n.Description
	}
	if n.Value != nil {
		e.Value = *n.Value
	}
	if n.Type != nil {
		e.Type = *n.Type
	}
	if n.Active != nil {
		e.Active = *n.Active
	}
	if n.CreatedAt != nil {
		e.CreatedAt = *n.CreatedAt
	}
	if n.UpdatedAt != nil {
		e.UpdatedAt = *n.UpdatedAt
	}
	return e
}

// Update actualiza un lote activo.
func (r *LotRepo) Update(ctx context.Context, l *entity.Lot) error {
	query := `
		UPDATE lots SET code = $2, quantity_liters = $3, discount = $4, discount_reason = $5, type_lot = $6,
			cost_liter = $7, reused_bottles = $8, lot_total_cost = $9, updated_at = $10
		WHERE id = $1 AND active = true`
	tag, err := r.q.Exec(ctx, query,
		l.ID, l.Code, l.QuantityLiters, l.Discount, l.DiscountReason, l.TypeLot,
		l.CostLiter, l.ReusedBottles, l.LotTotalCost, l.UpdatedAt,
	)
	return expectOne(tag, err, "update lot")
}

// SoftDelete marca el lote como inactivo. Sus asignaciones y ventas quedan intactas.
func (r *LotRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.q, "lots", id, "delete lot")
}

// List lista lotes activos.
func (r *LotRepo) List(ctx context.Context, page domain.Page) ([]*entity.Lot, int, error) {
	return listActive(ctx, r.q, newActiveQuery("lots", "l"), lotColumns, page, scanLot, "list lots")
}

// Search busca por código o tipo de lote (exacto).
func (r *LotRepo) Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Lot, int, error) {
	aq, err := newActiveQuery("lots", "l").Filter(lotSearch, filter)
	if err != nil {
		return nil, 0, err
	}
	return listActive(ctx, r.q, aq, lotColumns, page, scanLot, "search lots")
}
