package pgrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const earningColumns = `id, created_at, user_id, amount, earned_on`

const defaultEarningsLimit uint = 365

type EarningRepository struct {
	conn uow.DBTX
}

func NewEarningRepository(conn uow.DBTX) *EarningRepository {
	return &EarningRepository{conn: conn}
}

// Create добавляет начисление. Повторное начисление за тот же день возвращает domain.ErrDuplicateKey.
func (r *EarningRepository) Create(ctx context.Context, args repoargs.CreateEarning) (*domain.Earning, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO earnings (user_id, amount, earned_on)
		VALUES ($1, $2, $3)
		RETURNING `+earningColumns,
		args.UserID, args.Amount, args.EarnedOn,
	)
	e, err := scanEarning(row)
	if err != nil {
		return nil, convertErr(err, "creating earning for %s", args.UserID)
	}
	return e, nil
}

// UserIDsSince возвращает id пользователей, у которых есть начисление, созданное не раньше since.
func (r *EarningRepository) UserIDsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	rows, err := r.conn.Query(ctx, `SELECT DISTINCT user_id FROM earnings WHERE created_at >= $1`, since)
	if err != nil {
		return nil, convertErr(err, "selecting earned users since %s", since)
	}
	ids, collectErr := collectUUIDs(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "selecting earned users since %s", since)
	}
	return ids, nil
}

func (r *EarningRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit uint) ([]domain.Earning, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+earningColumns+`
		FROM earnings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limitOrDefault(limit, defaultEarningsLimit),
	)
	if err != nil {
		return nil, convertErr(err, "selecting earnings of %s", userID)
	}
	earnings, collectErr := collect(rows, scanEarning)
	if collectErr != nil {
		return nil, convertErr(collectErr, "selecting earnings of %s", userID)
	}
	return earnings, nil
}

func (r *EarningRepository) SumByUserID(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.conn.QueryRow(ctx, `SELECT coalesce(sum(amount), 0) FROM earnings WHERE user_id = $1`, userID).
		Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing earnings of %s", userID)
	}
	return sum, nil
}

func scanEarning(row rowScanner) (*domain.Earning, error) {
	var e domain.Earning
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UserID, &e.Amount, &e.EarnedOn); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}
