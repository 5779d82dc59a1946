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

const withdrawalColumns = `id, created_at, updated_at, user_id, amount, method, account_name, account_number, status`

const defaultWithdrawalsLimit uint = 200

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

// Create сохраняет заявку на вывод в статусе processing. Баланс не изменяется.
func (r *WithdrawalRepository) Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO withdrawals (user_id, amount, method, account_name, account_number, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+withdrawalColumns,
		args.UserID, args.Amount, args.Method, args.AccountName, args.AccountNumber,
		string(domain.WithdrawalStatusProcessing),
	)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal for %s", args.UserID)
	}
	return w, nil
}

func (r *WithdrawalRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`, id)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "locking withdrawal %d", id)
	}
	return w, nil
}

func (r *WithdrawalRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.WithdrawalStatus,
) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE withdrawals SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+withdrawalColumns, id, string(status),
	)
	w, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "updating withdrawal %d status", id)
	}
	return w, nil
}

func (r *WithdrawalRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+withdrawalColumns+`
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, convertErr(err, "selecting withdrawals of %s", userID)
	}
	ws, collectErr := collect(rows, scanWithdrawal)
	if collectErr != nil {
		return nil, convertErr(collectErr, "selecting withdrawals of %s", userID)
	}
	return ws, nil
}

func (r *WithdrawalRepository) CountByStatus(
	ctx context.Context,
	userID uuid.UUID,
	status domain.WithdrawalStatus,
) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM withdrawals WHERE user_id = $1 AND status = $2`, userID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting withdrawals of %s", userID)
	}
	return count, nil
}

// List выборка заявок для администратора, новые первыми.
func (r *WithdrawalRepository) List(ctx context.Context, args repoargs.ListWithdrawals) ([]domain.Withdrawal, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+withdrawalColumns+`
		FROM withdrawals
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
		LIMIT $2`, string(args.Status), limitOrDefault(args.Limit, defaultWithdrawalsLimit),
	)
	if err != nil {
		return nil, convertErr(err, "listing withdrawals")
	}
	ws, collectErr := collect(rows, scanWithdrawal)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing withdrawals")
	}
	return ws, nil
}

// SumApproved сумма всех одобренных выводов.
func (r *WithdrawalRepository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.conn.QueryRow(ctx,
		`SELECT coalesce(sum(amount), 0) FROM withdrawals WHERE status = $1`, string(domain.WithdrawalStatusApproved),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing approved withdrawals")
	}
	return sum, nil
}

// DailyRequested кол-во и сумма заявок на вывод по дням начиная с from.
func (r *WithdrawalRepository) DailyRequested(ctx context.Context, from time.Time) ([]repoargs.DailyTotal, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT date_trunc('day', created_at) AS day, count(*), coalesce(sum(amount), 0)
		FROM withdrawals
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day`, from,
	)
	if err != nil {
		return nil, convertErr(err, "daily withdrawals")
	}
	totals, collectErr := collect(rows, scanDailyTotal)
	if collectErr != nil {
		return nil, convertErr(collectErr, "daily withdrawals")
	}
	return totals, nil
}

func scanWithdrawal(row rowScanner) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(
		&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.UserID, &w.Amount, &w.Method, &w.AccountName, &w.AccountNumber, &w.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}
