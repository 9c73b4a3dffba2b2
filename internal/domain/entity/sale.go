package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de un producto de un lote a un cliente.
type Sale struct {
	ID         string
	ClientID   string
	ProductID  string
	LotID      string
	Quantity   int             // >= 0
	TotalPrice decimal.Decimal // >= 0
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
