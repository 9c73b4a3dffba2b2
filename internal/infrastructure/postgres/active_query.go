package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Lotes-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Capa de consultas sobre registros activos
// ──────────────────────────────────────────────────────────────────────────────

// searchColumn columna buscable de una tabla. Join se agrega solo cuando se filtra por ella.
type searchColumn struct {
	Expr string
	Text bool
	Join string
}

// activeQuery arma SELECT/COUNT sobre una tabla con alias. El primer predicado es siempre
// <alias>.active = true; no hay forma de construir una consulta sin él.
type activeQuery struct {
	from  string
	alias string
	joins []string
	where []string
	args  []any
}

func newActiveQuery(table, alias string) *activeQuery {
	return &activeQuery{
		from:  table + " " + alias,
		alias: alias,
		where: []string{alias + ".active = true"},
	}
}

// arg registra un parámetro y devuelve su placeholder.
func (q *activeQuery) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

// Where agrega un predicado; cada "?" del fragmento se reemplaza por el placeholder del arg correspondiente.
func (q *activeQuery) Where(cond string, args ...any) *activeQuery {
	for _, a := range args {
		cond = strings.Replace(cond, "?", q.arg(a), 1)
	}
	q.where = append(q.where, cond)
	return q
}

// Filter aplica un SearchFilter contra el catálogo de columnas de la tabla.
func (q *activeQuery) Filter(columns map[string]searchColumn, f domain.SearchFilter) (*activeQuery, error) {
	col, ok := columns[f.Field]
	if !ok {
		return nil, fmt.Errorf("%w: campo de búsqueda %q no soportado", domain.ErrInvalidInput, f.Field)
	}
	term := strings.TrimSpace(f.Term)
	if term == "" {
		return nil, fmt.Errorf("%w: término de búsqueda vacío", domain.ErrInvalidInput)
	}
	if col.Join != "" {
		q.joins = append(q.joins, col.Join)
	}
	switch {
	case f.Mode == domain.SearchExact && col.Text:
		q.where = append(q.where, fmt.Sprintf("lower(%s) = lower(%s)", col.Expr, q.arg(term)))
	case f.Mode == domain.SearchExact:
		q.where = append(q.where, fmt.Sprintf("%s = %s", col.Expr, q.arg(term)))
	default:
		q.where = append(q.where, fmt.Sprintf("%s ILIKE '%%' || %s || '%%'", col.Expr, q.arg(escapeLike(term))))
	}
	return q, nil
}

func (q *activeQuery) body() string {
	var b strings.Builder
	b.WriteString(" FROM ")
	b.WriteString(q.from)
	for _, j := range q.joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(q.where, " AND "))
	return b.String()
}

// Count SQL para el total de filas que cumplen los predicados.
func (q *activeQuery) Count() (string, []any) {
	return "SELECT count(*)" + q.body(), q.args
}

// Select SQL paginado, created_at DESC.
func (q *activeQuery) Select(columns string, page domain.Page) (string, []any) {
	args := append([]any{}, q.args...)
	args = append(args, page.Limit, page.Offset)
	n := len(q.args)
	sql := fmt.Sprintf("SELECT %s%s ORDER BY %s.created_at DESC LIMIT $%d OFFSET $%d",
		columns, q.body(), q.alias, n+1, n+2)
	return sql, args
}

// One SQL de una sola fila (sin orden ni paginación).
func (q *activeQuery) One(columns string) (string, []any) {
	return "SELECT " + columns + q.body() + " LIMIT 1", q.args
}

// Aggregate SQL de agregación sin paginación; tail admite "?" igual que Where (GROUP BY, ORDER BY, LIMIT).
func (q *activeQuery) Aggregate(expr, tail string, args ...any) (string, []any) {
	for _, a := range args {
		tail = strings.Replace(tail, "?", q.arg(a), 1)
	}
	sql := "SELECT " + expr + q.body()
	if tail != "" {
		sql += " " + tail
	}
	return sql, q.args
}

// escapeLike escapa los comodines de LIKE para que el término se trate como texto literal.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
