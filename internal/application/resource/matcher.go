package resource

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher decide si un registro (sus campos de búsqueda) coincide con query.
// rank ordena los resultados: menor es mejor; igual rank conserva el orden original.
type Matcher func(query string, fields []string) (rank int, ok bool)

// SubstringMatcher coincidencia por subcadena sin distinguir mayúsculas
// (plegado de caso Unicode).
func SubstringMatcher() Matcher {
	return func(query string, fields []string) (int, bool) {
		fold := cases.Fold()
		q := fold.String(strings.TrimSpace(query))
		for _, f := range fields {
			if strings.Contains(fold.String(f), q) {
				return 0, true
			}
		}
		return 0, false
	}
}
