package domain

import "strings"

// SearchMode modo de coincidencia de una búsqueda.
type SearchMode int

const (
	// SearchFuzzy subcadena, sin distinguir mayúsculas.
	SearchFuzzy SearchMode = iota
	// SearchExact igualdad (sin distinguir mayúsculas en campos de texto).
	SearchExact
)

func (m SearchMode) String() string {
	if m == SearchExact {
		return "exact"
	}
	return "fuzzy"
}

// SearchFilter filtro de búsqueda sobre un campo designado por el repositorio.
type SearchFilter struct {
	Field string
	Term  string
	Mode  SearchMode
}

// DetectSearchMode devuelve SearchExact si el término es un entero sin signo (ej. una cédula).
func DetectSearchMode(term string) SearchMode {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchFuzzy
	}
	for _, r := range term {
		if r < '0' || r > '9' {
			return SearchFuzzy
		}
	}
	return SearchExact
}
