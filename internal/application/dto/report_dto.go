package dto

import "github.com/shopspring/decimal"

// ProductionReport litros producidos en el rango.
type ProductionReport struct {
	TotalLiters decimal.Decimal `json:"total_liters"`
}

// AmountReport total monetario de un reporte (gastos por tipo, operativos, ingresos).
type AmountReport struct {
	Total decimal.Decimal `json:"total"`
}

// CountReport conteo de registros en el rango (ventas, clientes nuevos).
type CountReport struct {
	Count int `json:"count"`
}

// ProceedsVsExpensesReport series mensuales alineadas por índice.
type ProceedsVsExpensesReport struct {
	Months      []int             `json:"months"`
	Proceeds    []decimal.Decimal `json:"proceeds"`
	Operational []decimal.Decimal `json:"operational"`
	Other       []decimal.Decimal `json:"other"`
	Utility     []decimal.Decimal `json:"utility"`
}

// LotProfitabilityReport arreglos paralelos por lote (los más recientes primero).
type LotProfitabilityReport struct {
	LotCodes       []string          `json:"lot_codes"`
	ExpenseTotals  []decimal.Decimal `json:"expense_totals"`
	ProceedsTotals []decimal.Decimal `json:"proceeds_totals"`
}

// LotCostResponse lote con sus asignaciones activas y el costo acumulado.
type LotCostResponse struct {
	LotResponse
	Expenses     []LotExpenseResponse `json:"expenses"`
	ExpenseTotal decimal.Decimal      `json:"expense_total"`
	CostPerLiter decimal.Decimal      `json:"cost_per_liter"`
}
