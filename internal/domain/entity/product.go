package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto terminado que se vende por lote.
type Product struct {
	ID          string
	Title       string // único, normalizado
	Code        string
	Description string
	Stock       int
	Price       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
