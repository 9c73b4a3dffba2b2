package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot lote de producción. Expenses solo viene cargado cuando se pide con LotInclude.
type Lot struct {
	ID             string
	Code           string // único
	QuantityLiters decimal.Decimal
	Discount       decimal.Decimal
	DiscountReason string
	TypeLot        string
	CostLiter      decimal.Decimal
	ReusedBottles  int
	LotTotalCost   decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Expenses []*LotExpense
}
