package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Code        string          `json:"code" validate:"omitempty,max=100"`
	Description string          `json:"description"`
	Stock       int             `json:"stock" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial.
type UpdateProductRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Code        *string          `json:"code" validate:"omitempty,max=100"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
