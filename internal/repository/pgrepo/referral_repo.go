package pgrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const referralColumns = `id, created_at, referrer_id, referred_user_id, status, bonus_amount`

type ReferralRepository struct {
	conn uow.DBTX
}

func NewReferralRepository(conn uow.DBTX) *ReferralRepository {
	return &ReferralRepository{conn: conn}
}

func (r *ReferralRepository) Create(ctx context.Context, args repoargs.CreateReferral) (*domain.Referral, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO referrals (referrer_id, referred_user_id, status, bonus_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING `+referralColumns,
		args.ReferrerID, args.ReferredUserID, string(args.Status), args.BonusAmount,
	)
	ref, err := scanReferral(row)
	if err != nil {
		return nil, convertErr(err, "creating referral for %s", args.ReferrerID)
	}
	return ref, nil
}

// BackfillLatestUnresolved проставляет userID в самую свежую запись реферера без приглашенного.
// Если такой записи нет, возвращает domain.ErrRecordNotFound.
func (r *ReferralRepository) BackfillLatestUnresolved(
	ctx context.Context,
	referrerID, userID uuid.UUID,
) (*domain.Referral, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE referrals SET referred_user_id = $2
		WHERE id = (
			SELECT id FROM referrals
			WHERE referrer_id = $1 AND referred_user_id IS NULL
			ORDER BY created_at DESC, id DESC
			LIMIT 1
			FOR UPDATE
		)
		RETURNING `+referralColumns, referrerID, userID,
	)
	ref, err := scanReferral(row)
	if err != nil {
		return nil, convertErr(err, "backfilling referral of %s", referrerID)
	}
	return ref, nil
}

func (r *ReferralRepository) GetByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+referralColumns+`
		FROM referrals
		WHERE referrer_id = $1
		ORDER BY created_at DESC`, referrerID,
	)
	if err != nil {
		return nil, convertErr(err, "selecting referrals of %s", referrerID)
	}
	refs, collectErr := collect(rows, scanReferral)
	if collectErr != nil {
		return nil, convertErr(collectErr, "selecting referrals of %s", referrerID)
	}
	return refs, nil
}

func (r *ReferralRepository) CountByStatus(
	ctx context.Context,
	referrerID uuid.UUID,
	status domain.ReferralStatus,
) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM referrals WHERE referrer_id = $1 AND status = $2`, referrerID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting referrals of %s", referrerID)
	}
	return count, nil
}

// SumBonusByStatus сумма бонусов реферера по записям в статусе status.
func (r *ReferralRepository) SumBonusByStatus(
	ctx context.Context,
	referrerID uuid.UUID,
	status domain.ReferralStatus,
) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.conn.QueryRow(ctx,
		`SELECT coalesce(sum(bonus_amount), 0) FROM referrals WHERE referrer_id = $1 AND status = $2`,
		referrerID, string(status),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing referral bonus of %s", referrerID)
	}
	return sum, nil
}

func scanReferral(row rowScanner) (*domain.Referral, error) {
	var ref domain.Referral
	err := row.Scan(&ref.ID, &ref.CreatedAt, &ref.ReferrerID, &ref.ReferredUserID, &ref.Status, &ref.BonusAmount)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ref, nil
}
