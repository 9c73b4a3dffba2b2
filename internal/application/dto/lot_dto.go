package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest entrada para crear un lote.
type CreateLotRequest struct {
	Code           string          `json:"code" validate:"required,min=1,max=100"`
	QuantityLiters decimal.Decimal `json:"quantity_liters"`
	Discount       decimal.Decimal `json:"discount"`
	DiscountReason string          `json:"discount_reason" validate:"omitempty,max=200"`
	TypeLot        string          `json:"type_lot" validate:"required,max=60"`
	CostLiter      decimal.Decimal `json:"cost_liter"`
	ReusedBottles  int             `json:"reused_bottles" validate:"min=0"`
	LotTotalCost   decimal.Decimal `json:"lot_total_cost"`
}

// UpdateLotRequest actualización parcial.
type UpdateLotRequest struct {
	Code           *string          `json:"code" validate:"omitempty,min=1,max=100"`
	QuantityLiters *decimal.Decimal `json:"quantity_liters"`
	Discount       *decimal.Decimal `json:"discount"`
	DiscountReason *string          `json:"discount_reason" validate:"omitempty,max=200"`
	TypeLot        *string          `json:"type_lot" validate:"omitempty,max=60"`
	CostLiter      *decimal.Decimal `json:"cost_liter"`
	ReusedBottles  *int             `json:"reused_bottles" validate:"omitempty,min=0"`
	LotTotalCost   *decimal.Decimal `json:"lot_total_cost"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	QuantityLiters decimal.Decimal `json:"quantity_liters"`
	Discount       decimal.Decimal `json:"discount"`
	DiscountReason string          `json:"discount_reason"`
	TypeLot        string          `json:"type_lot"`
	CostLiter      decimal.Decimal `json:"cost_liter"`
	ReusedBottles  int             `json:"reused_bottles"`
	LotTotalCost   decimal.Decimal `json:"lot_total_cost"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
