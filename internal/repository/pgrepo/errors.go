package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sajidali832/envo4/internal/domain"
)

// Коды SQLSTATE, которые различает репозиторий.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// Ограничение profiles.balance >= 0.
const balanceCheckConstraint = "profiles_balance_check"

// convertErr приводит ошибку pgx к доменной и добавляет контекст операции:
//   - pgx.ErrNoRows и нарушение внешнего ключа дают domain.ErrRecordNotFound;
//   - нарушение уникальности дает domain.ErrDuplicateKey;
//   - отрицательный баланс профиля дает domain.ErrNotEnoughBalance;
//   - остальное оборачивается в domain.ErrUnknown с исходным текстом.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	op := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", op, domain.ErrRecordNotFound)
	}

	return fmt.Errorf("[repository/%s] %w: %s", op, classifyPgErr(err), err.Error())
}

func classifyPgErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return domain.ErrUnknown
	}
	switch pgErr.Code {
	case uniqueViolationCode:
		return domain.ErrDuplicateKey
	case foreignKeyViolationCode:
		return domain.ErrRecordNotFound
	case checkViolationCode:
		if pgErr.ConstraintName == balanceCheckConstraint {
			return domain.ErrNotEnoughBalance
		}
	}
	return domain.ErrUnknown
}
