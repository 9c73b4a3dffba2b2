package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ClientID   string          `json:"client_id" validate:"required,uuid"`
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	LotID      string          `json:"lot_id" validate:"required,uuid"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// UpdateSaleRequest actualización parcial; las referencias nuevas se vuelven a resolver.
type UpdateSaleRequest struct {
	ClientID   *string          `json:"client_id" validate:"omitempty,uuid"`
	ProductID  *string          `json:"product_id" validate:"omitempty,uuid"`
	LotID      *string          `json:"lot_id" validate:"omitempty,uuid"`
	Quantity   *int             `json:"quantity" validate:"omitempty,min=0"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	ProductID  string          `json:"product_id"`
	LotID      string          `json:"lot_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
