package report

import "github.com/shopspring/decimal"

// LotTotals una fila por lote: gastos asignados activos y ventas activas.
type LotTotals struct {
	LotID         string
	Code          string
	ExpenseTotal  decimal.Decimal
	ProceedsTotal decimal.Decimal
}

// Profitability arreglos paralelos: el índice i es el mismo lote en los tres.
type Profitability struct {
	LotCodes       []string
	ExpenseTotals  []decimal.Decimal
	ProceedsTotals []decimal.Decimal
}

// BuildProfitability arma los arreglos desde una fila por lote, conservando el orden recibido.
func BuildProfitability(rows []LotTotals) Profitability {
	out := Profitability{
		LotCodes:       make([]string, len(rows)),
		ExpenseTotals:  make([]decimal.Decimal, len(rows)),
		ProceedsTotals: make([]decimal.Decimal, len(rows)),
	}
	for i, r := range rows {
		out.LotCodes[i] = r.Code
		out.ExpenseTotals[i] = r.ExpenseTotal
		out.ProceedsTotals[i] = r.ProceedsTotal
	}
	return out
}
