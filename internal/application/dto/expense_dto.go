package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para crear (o revivir) un gasto.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=200"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type" validate:"required,max=60"`
}

// UpdateExpenseRequest actualización parcial. Cambiar Value no toca las asignaciones ya hechas.
type UpdateExpenseRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1,max=200"`
	Value       *decimal.Decimal `json:"value"`
	Type        *string          `json:"type" validate:"omitempty,max=60"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateLotExpenseRequest asigna un gasto existente a un lote.
type CreateLotExpenseRequest struct {
	LotID     string `json:"lot_id" validate:"required,uuid"`
	ExpenseID string `json:"expense_id" validate:"required,uuid"`
}

// UpdateLotExpenseRequest permite corregir el valor asignado o mover la asignación a otro lote.
type UpdateLotExpenseRequest struct {
	LotID *string          `json:"lot_id" validate:"omitempty,uuid"`
	Value *decimal.Decimal `json:"value"`
}

// LotExpenseResponse salida de una asignación.
type LotExpenseResponse struct {
	ID        string           `json:"id"`
	LotID     string           `json:"lot_id"`
	ExpenseID string           `json:"expense_id"`
	Value     decimal.Decimal  `json:"value"`
	Expense   *ExpenseResponse `json:"expense,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
