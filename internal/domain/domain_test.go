package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lotes-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestPageCount_25RegistrosLimit10(t *testing.T) {
	pages, err := domain.PageCount(25, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
}

func TestPageCount_Bordes(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{11, 10, 2},
		{1, 1, 1},
	}
	for _, tc := range cases {
		got, err := domain.PageCount(tc.total, tc.limit)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestPageCount_LimitCero(t *testing.T) {
	_, err := domain.PageCount(25, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestNewPage_Validacion(t *testing.T) {
	_, err := domain.NewPage(0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = domain.NewPage(10, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := domain.NewPage(10, 20)
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Limit: 10, Offset: 20}, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo de búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectSearchMode(t *testing.T) {
	assert.Equal(t, domain.SearchExact, domain.DetectSearchMode("1098765432"))
	assert.Equal(t, domain.SearchExact, domain.DetectSearchMode(" 42 "))
	assert.Equal(t, domain.SearchFuzzy, domain.DetectSearchMode("maria"))
	assert.Equal(t, domain.SearchFuzzy, domain.DetectSearchMode("-12"))
	assert.Equal(t, domain.SearchFuzzy, domain.DetectSearchMode("12.5"))
	assert.Equal(t, domain.SearchFuzzy, domain.DetectSearchMode(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDateRange_FinInclusivo(t *testing.T) {
	r, err := domain.ParseDateRange("2024-01-01", "2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 2, 28, 23, 59, 59, 999999999, time.UTC), r.End)
}

func TestParseDateRange_MismoDia(t *testing.T) {
	r, err := domain.ParseDateRange("2024-03-05", "2024-03-05")
	require.NoError(t, err)
	assert.True(t, r.End.After(r.Start))
}

func TestParseDateRange_Invertido(t *testing.T) {
	_, err := domain.ParseDateRange("2024-02-01", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDateRange_Malformado(t *testing.T) {
	for _, pair := range [][2]string{
		{"", "2024-01-01"},
		{"2024-01-01", ""},
		{"01/01/2024", "2024-01-31"},
		{"2024-01-01", "2024-13-01"},
	} {
		_, err := domain.ParseDateRange(pair[0], pair[1])
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "start=%q end=%q", pair[0], pair[1])
	}
}

func TestDateRange_Validate(t *testing.T) {
	now := time.Now()
	assert.NoError(t, domain.DateRange{Start: now, End: now}.Validate())
	assert.ErrorIs(t, domain.DateRange{Start: now, End: now.Add(-time.Second)}.Validate(), domain.ErrInvalidInput)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "arriendo bodega", domain.NormalizeText("  Arriendo BODEGA "))
	assert.Equal(t, "ñame ácido", domain.NormalizeText("ÑAME Ácido"))
}
