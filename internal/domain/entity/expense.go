package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto conocidos. El tipo es texto libre; estos son los que usan los reportes.
const (
	ExpenseTypeAdministrative = "administrativo"
	ExpenseTypeAdvertising    = "publicidad"
	ExpenseTypeOther          = "otros"
	ExpenseTypeOperational    = "operativos"
)

// Expense gasto general. Description es única y se guarda normalizada.
type Expense struct {
	ID          string
	Description string
	Value       decimal.Decimal // >= 0
	Type        string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
