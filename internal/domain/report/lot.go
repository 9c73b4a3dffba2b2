package report

import "github.com/shopspring/decimal"

// LotCost costo acumulado de un lote a partir de sus asignaciones de gasto.
type LotCost struct {
	ExpenseTotal decimal.Decimal
	CostPerLiter decimal.Decimal // 0 si el lote no tiene litros
}

// ComputeLotCost suma los valores asignados sin redondeos intermedios.
func ComputeLotCost(liters decimal.Decimal, values []decimal.Decimal) LotCost {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	perLiter := decimal.Zero
	if liters.IsPositive() {
		perLiter = total.DivRound(liters, 4)
	}
	return LotCost{ExpenseTotal: total, CostPerLiter: perLiter}
}
