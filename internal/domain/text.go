package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeText recorta espacios y pasa a minúsculas (descripciones, títulos, nombres, emails).
// cases.Caser no es seguro para uso concurrente, por eso se crea uno por llamada.
func NormalizeText(s string) string {
	return cases.Lower(language.Spanish).String(strings.TrimSpace(s))
}
