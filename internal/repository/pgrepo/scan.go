package pgrepo

import (
	"github.com/jackc/pgx/v5"
)

// rowScanner общий интерфейс pgx.Row и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// collect вычитывает все строки rows функцией scan.
func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) { //nolint:wrapcheck
		v, err := scan(row)
		if err != nil {
			var zero T
			return zero, err
		}
		return *v, nil
	})
}

// limitOrDefault ограничивает размер выборки. Нулевой или слишком большой limit заменяется на def.
func limitOrDefault(limit, def uint) int64 {
	if limit == 0 || limit > maxSelectLimit {
		limit = def
	}
	return int64(limit) //nolint:gosec
}

const maxSelectLimit uint = 1000
