package pgrepo

import (
	"context"
	"fmt"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const submissionColumns = `id, created_at, updated_at, account_name, account_number, platform, screenshot_path,
	screenshot_url, status, referrer_id, plan_id, investment_amount, daily_return_amount, user_id, user_email`

const defaultSubmissionsLimit uint = 200

type SubmissionRepository struct {
	conn uow.DBTX
}

func NewSubmissionRepository(conn uow.DBTX) *SubmissionRepository {
	return &SubmissionRepository{conn: conn}
}

// Create сохраняет заявку об оплате в статусе pending.
func (r *SubmissionRepository) Create(
	ctx context.Context,
	args repoargs.CreateSubmission,
) (*domain.PaymentSubmission, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO payment_submissions (account_name, account_number, platform, screenshot_path, screenshot_url,
		                                 status, referrer_id, plan_id, investment_amount, daily_return_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+submissionColumns,
		args.AccountName, args.AccountNumber, args.Platform, args.ScreenshotPath, args.ScreenshotURL,
		string(domain.SubmissionStatusPending), args.ReferrerID, args.PlanID,
		args.InvestmentAmount, args.DailyReturnAmount,
	)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, convertErr(err, "creating payment submission")
	}
	return sub, nil
}

// FindByIDForUpdate блокирует строку заявки до конца транзакции.
func (r *SubmissionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.PaymentSubmission, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM payment_submissions WHERE id = $1 FOR UPDATE`, id)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, convertErr(err, "locking payment submission %d", id)
	}
	return sub, nil
}

// FindLatestByAccountNumber возвращает самую свежую заявку для номера телефона.
func (r *SubmissionRepository) FindLatestByAccountNumber(
	ctx context.Context,
	accountNumber string,
) (*domain.PaymentSubmission, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+submissionColumns+`
		FROM payment_submissions
		WHERE account_number = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, accountNumber,
	)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, convertErr(err, "finding latest payment submission for %s", accountNumber)
	}
	return sub, nil
}

func (r *SubmissionRepository) ListByStatus(
	ctx context.Context,
	status domain.SubmissionStatus,
	limit uint,
) ([]domain.PaymentSubmission, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+submissionColumns+`
		FROM payment_submissions
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2`, string(status), limitOrDefault(limit, defaultSubmissionsLimit),
	)
	if err != nil {
		return nil, convertErr(err, "listing %s payment submissions", status)
	}
	subs, collectErr := collect(rows, scanSubmission)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing %s payment submissions", status)
	}
	return subs, nil
}

func (r *SubmissionRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.SubmissionStatus,
) (*domain.PaymentSubmission, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE payment_submissions SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+submissionColumns, id, string(status),
	)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, convertErr(err, "updating payment submission %d status", id)
	}
	return sub, nil
}

// LinkUser привязывает аккаунт к заявке. Заявка, уже привязанная к аккаунту (в том числе удаленному,
// у него остается user_email), не изменяется, в этом случае возвращается domain.ErrRecordNotFound.
func (r *SubmissionRepository) LinkUser(ctx context.Context, args repoargs.LinkSubmissionUser) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE payment_submissions SET user_id = $2, user_email = $3, updated_at = now()
		WHERE id = $1 AND user_id IS NULL AND user_email = ''`,
		args.SubmissionID, args.UserID, args.UserEmail,
	)
	if err != nil {
		return convertErr(err, "linking payment submission %d", args.SubmissionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/linking payment submission %d] %w", args.SubmissionID, domain.ErrRecordNotFound)
	}
	return nil
}

func scanSubmission(row rowScanner) (*domain.PaymentSubmission, error) {
	var s domain.PaymentSubmission
	err := row.Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.AccountName, &s.AccountNumber, &s.Platform, &s.ScreenshotPath,
		&s.ScreenshotURL, &s.Status, &s.ReferrerID, &s.PlanID, &s.InvestmentAmount, &s.DailyReturnAmount,
		&s.UserID, &s.UserEmail,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &s, nil
}
