package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotExpense asignación de un gasto a un lote.
// Value es una copia de Expense.Value al momento de asignar; no sigue las ediciones posteriores del gasto.
type LotExpense struct {
	ID        string
	LotID     string
	ExpenseID string
	Value     decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Expense *Expense // opcional, cargado junto al lote
}
