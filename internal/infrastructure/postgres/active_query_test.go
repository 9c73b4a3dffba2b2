package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lotes-api/internal/domain"
)

var testColumns = map[string]searchColumn{
	"dni":  {Expr: "c.dni", Text: true},
	"name": {Expr: "c.name", Text: true},
	"qty":  {Expr: "c.quantity"},
	"client": {
		Expr: "cl.name",
		Text: true,
		Join: "JOIN clients cl ON cl.id = c.client_id",
	},
}

func TestActiveQuery_SiempreFiltraActivos(t *testing.T) {
	sql, args := newActiveQuery("clients", "c").Count()
	assert.Equal(t, "SELECT count(*) FROM clients c WHERE c.active = true", sql)
	assert.Empty(t, args)

	sql, args = newActiveQuery("clients", "c").Select("c.id", domain.Page{Limit: 10, Offset: 20})
	assert.Equal(t, "SELECT c.id FROM clients c WHERE c.active = true ORDER BY c.created_at DESC LIMIT $1 OFFSET $2", sql)
	assert.Equal(t, []any{10, 20}, args)
}

func TestActiveQuery_Exacto(t *testing.T) {
	q, err := newActiveQuery("clients", "c").Filter(testColumns, domain.SearchFilter{Field: "dni", Term: "1098", Mode: domain.SearchExact})
	require.NoError(t, err)

	sql, args := q.Count()
	assert.Equal(t, "SELECT count(*) FROM clients c WHERE c.active = true AND lower(c.dni) = lower($1)", sql)
	assert.Equal(t, []any{"1098"}, args)

	sql, args = q.Select("c.id", domain.Page{Limit: 5, Offset: 0})
	assert.Contains(t, sql, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{"1098", 5, 0}, args)
}

func TestActiveQuery_ExactoNoTexto(t *testing.T) {
	q, err := newActiveQuery("clients", "c").Filter(testColumns, domain.SearchFilter{Field: "qty", Term: "3", Mode: domain.SearchExact})
	require.NoError(t, err)
	sql, _ := q.Count()
	assert.Contains(t, sql, "AND c.quantity = $1")
}

func TestActiveQuery_ParcialEscapaComodines(t *testing.T) {
	q, err := newActiveQuery("clients", "c").Filter(testColumns, domain.SearchFilter{Field: "name", Term: " 50%_off ", Mode: domain.SearchFuzzy})
	require.NoError(t, err)

	sql, args := q.Count()
	assert.Equal(t, "SELECT count(*) FROM clients c WHERE c.active = true AND c.name ILIKE '%' || $1 || '%'", sql)
	assert.Equal(t, []any{`50\%\_off`}, args)
}

func TestActiveQuery_JoinSoloAlFiltrar(t *testing.T) {
	q, err := newActiveQuery("sales", "c").Filter(testColumns, domain.SearchFilter{Field: "client", Term: "ana"})
	require.NoError(t, err)
	sql, _ := q.Count()
	assert.Equal(t, "SELECT count(*) FROM sales c JOIN clients cl ON cl.id = c.client_id WHERE c.active = true AND cl.name ILIKE '%' || $1 || '%'", sql)
}

func TestActiveQuery_CampoDesconocido(t *testing.T) {
	_, err := newActiveQuery("clients", "c").Filter(testColumns, domain.SearchFilter{Field: "password", Term: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = newActiveQuery("clients", "c").Filter(testColumns, domain.SearchFilter{Field: "name", Term: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActiveQuery_WhereYOne(t *testing.T) {
	sql, args := newActiveQuery("lots", "l").Where("l.id = ?", "abc").One("l.id, l.code")
	assert.Equal(t, "SELECT l.id, l.code FROM lots l WHERE l.active = true AND l.id = $1 LIMIT 1", sql)
	assert.Equal(t, []any{"abc"}, args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
	assert.Equal(t, "vino", escapeLike("vino"))
}

func TestActiveQuery_Aggregate(t *testing.T) {
	sql, args := newActiveQuery("lots", "l").
		Where("l.created_at BETWEEN ? AND ?", "a", "b").
		Aggregate("l.id, l.code", "ORDER BY l.created_at DESC LIMIT ?", 20)
	assert.Equal(t, "SELECT l.id, l.code FROM lots l WHERE l.active = true AND l.created_at BETWEEN $1 AND $2 ORDER BY l.created_at DESC LIMIT $3", sql)
	assert.Equal(t, []any{"a", "b", 20}, args)
}
