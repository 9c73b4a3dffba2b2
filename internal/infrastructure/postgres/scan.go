package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Lotes-api/internal/domain"
)

// scanFunc lee una fila en una entidad. pgx.Rows satisface pgx.Row.
type scanFunc[T any] func(row pgx.Row) (*T, error)

// listActive ejecuta COUNT y SELECT paginado sobre la misma consulta.
func listActive[T any](ctx context.Context, q Querier, aq *activeQuery, columns string, page domain.Page, scan scanFunc[T], op string) ([]*T, int, error) {
	countSQL, countArgs := aq.Count()
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, wrapErr(op+" count", err)
	}
	if total == 0 {
		return []*T{}, 0, nil
	}

	sql, args := aq.Select(columns, page)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, wrapErr(op, err)
	}
	defer rows.Close()
	list := make([]*T, 0, page.Limit)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, wrapErr(op+" scan", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr(op, err)
	}
	return list, total, nil
}

// getActive devuelve (nil, nil) si no hay fila.
func getActive[T any](ctx context.Context, q Querier, aq *activeQuery, columns string, scan scanFunc[T], op string) (*T, error) {
	sql, args := aq.One(columns)
	item, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return item, nil
}

// softDelete marca active = false. Si la fila no existe o ya estaba inactiva devuelve ErrNotFound.
func softDelete(ctx context.Context, q Querier, table, id, op string) error {
	tag, err := q.Exec(ctx, "UPDATE "+table+" SET active = false, updated_at = now() WHERE id = $1 AND active = true", id)
	if err != nil {
		return wrapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// expectOne convierte un UPDATE sin filas afectadas en ErrNotFound.
func expectOne(tag interface{ RowsAffected() int64 }, err error, op string) error {
	if err != nil {
		return wrapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
