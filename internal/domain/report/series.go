// Package report contiene la aritmética pura de los reportes financieros:
// series mensuales, composición ingresos vs gastos y rentabilidad por lote.
// No conoce la base de datos; recibe filas ya agregadas.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthlyTotal total de un mes calendario (1-12).
type MonthlyTotal struct {
	Month int
	Total decimal.Decimal
}

// Summary series alineadas por índice: la posición i de cada slice corresponde a Months[i].
type Summary struct {
	Months      []int
	Proceeds    []decimal.Decimal
	Operational []decimal.Decimal
	Other       []decimal.Decimal
	Utility     []decimal.Decimal
}

// ComposeSummary combina las tres series por número de mes (no por posición).
// Months es la unión ordenada de los meses presentes en cualquier serie; el mes que falta
// en una serie vale 0. Utility[i] = Proceeds[i] - (Operational[i] + Other[i]).
func ComposeSummary(proceeds, operational, other []MonthlyTotal) Summary {
	p := denseByMonth(proceeds)
	op := denseByMonth(operational)
	ot := denseByMonth(other)

	seen := make(map[int]struct{}, len(p)+len(op)+len(ot))
	for _, m := range []map[int]decimal.Decimal{p, op, ot} {
		for month := range m {
			seen[month] = struct{}{}
		}
	}
	months := make([]int, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	sort.Ints(months)

	s := Summary{
		Months:      months,
		Proceeds:    make([]decimal.Decimal, len(months)),
		Operational: make([]decimal.Decimal, len(months)),
		Other:       make([]decimal.Decimal, len(months)),
		Utility:     make([]decimal.Decimal, len(months)),
	}
	for i, month := range months {
		s.Proceeds[i] = p[month]
		s.Operational[i] = op[month]
		s.Other[i] = ot[month]
		s.Utility[i] = s.Proceeds[i].Sub(s.Operational[i].Add(s.Other[i]))
	}
	return s
}

// denseByMonth indexa por mes; meses repetidos (rangos de más de un año) se suman.
func denseByMonth(series []MonthlyTotal) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(series))
	for _, row := range series {
		out[row.Month] = out[row.Month].Add(row.Total)
	}
	return out
}
