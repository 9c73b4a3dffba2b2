package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha aceptado en los reportes.
const DateLayout = "2006-01-02"

// DateRange rango cerrado [Start, End] sobre created_at.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange valida que End no sea anterior a Start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: la fecha final es anterior a la inicial", ErrInvalidInput)
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange interpreta fechas YYYY-MM-DD. La fecha final se extiende hasta 23:59:59.999999999
// para que el día completo quede incluido.
func ParseDateRange(start, end string) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, fmt.Errorf("%w: start_date y end_date son requeridos", ErrInvalidInput)
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start_date inválido, formato esperado YYYY-MM-DD", ErrInvalidInput)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end_date inválido, formato esperado YYYY-MM-DD", ErrInvalidInput)
	}
	return NewDateRange(s, e.Add(24*time.Hour-time.Nanosecond))
}

// Validate vuelve a comprobar el orden (rangos construidos a mano en tests o adaptadores).
func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: la fecha final es anterior a la inicial", ErrInvalidInput)
	}
	return nil
}
