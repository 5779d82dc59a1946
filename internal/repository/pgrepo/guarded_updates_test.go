package pgrepo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
)

// Запросы с условием в WHERE: списание только при достаточном балансе, дозаполнение последнего
// незакрытого реферала и однократная привязка заявки.
type GuardedUpdatesTestSuite struct {
	suite.Suite
	pool pgxmock.PgxPoolIface
}

func TestGuardedUpdatesSuite(t *testing.T) {
	suite.Run(t, new(GuardedUpdatesTestSuite))
}

func (s *GuardedUpdatesTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.pool = pool
}

func (s *GuardedUpdatesTestSuite) TearDownTest() {
	s.Require().NoError(s.pool.ExpectationsWereMet())
	s.pool.Close()
}

const debitQuery = `UPDATE profiles SET balance = balance - \$2, updated_at = now\(\)\s+` +
	`WHERE id = \$1 AND balance >= \$2\s+RETURNING balance`

func (s *GuardedUpdatesTestSuite) TestDebitBalance() {
	repo := NewProfileRepository(s.pool)
	id := uuid.New()
	amount := decimal.NewFromInt(500)

	s.pool.ExpectQuery(debitQuery).
		WithArgs(id, amount).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("1500"))

	balance, err := repo.DebitBalance(s.T().Context(), id, amount)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1500).Equal(balance))
}

func (s *GuardedUpdatesTestSuite) TestDebitBalanceInsufficient() {
	repo := NewProfileRepository(s.pool)
	id := uuid.New()
	amount := decimal.NewFromInt(5000)

	// условие balance >= $2 не выполнено, строка не обновлена.
	s.pool.ExpectQuery(debitQuery).
		WithArgs(id, amount).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}))

	balance, err := repo.DebitBalance(s.T().Context(), id, amount)
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	s.True(balance.IsZero())
}

const backfillQuery = `UPDATE referrals SET referred_user_id = \$2\s+WHERE id = \(\s+` +
	`SELECT id FROM referrals\s+WHERE referrer_id = \$1 AND referred_user_id IS NULL\s+` +
	`ORDER BY created_at DESC, id DESC\s+LIMIT 1\s+FOR UPDATE\s+\)`

func (s *GuardedUpdatesTestSuite) TestBackfillLatestUnresolved() {
	repo := NewReferralRepository(s.pool)
	referrerID, userID := uuid.New(), uuid.New()
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	s.pool.ExpectQuery(backfillQuery).
		WithArgs(referrerID, userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "created_at", "referrer_id", "referred_user_id", "status", "bonus_amount",
		}).AddRow(
			int64(7), createdAt, referrerID, uuid.NullUUID{UUID: userID, Valid: true},
			domain.ReferralStatusInvested, decimal.NewFromInt(200),
		))

	ref, err := repo.BackfillLatestUnresolved(s.T().Context(), referrerID, userID)
	s.Require().NoError(err)
	s.Equal(int64(7), ref.ID)
	s.Equal(userID, ref.ReferredUserID.UUID)
	s.True(ref.ReferredUserID.Valid)
}

func (s *GuardedUpdatesTestSuite) TestBackfillLatestUnresolvedNothingOpen() {
	repo := NewReferralRepository(s.pool)
	referrerID, userID := uuid.New(), uuid.New()

	s.pool.ExpectQuery(backfillQuery).
		WithArgs(referrerID, userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "created_at", "referrer_id", "referred_user_id", "status", "bonus_amount",
		}))

	_, err := repo.BackfillLatestUnresolved(s.T().Context(), referrerID, userID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

const linkQuery = `UPDATE payment_submissions SET user_id = \$2, user_email = \$3, updated_at = now\(\)\s+` +
	`WHERE id = \$1 AND user_id IS NULL AND user_email = ''`

func (s *GuardedUpdatesTestSuite) TestLinkUser() {
	repo := NewSubmissionRepository(s.pool)
	args := repoargs.LinkSubmissionUser{SubmissionID: 3, UserID: uuid.New(), UserEmail: "ali@example.com"}

	s.pool.ExpectExec(linkQuery).
		WithArgs(args.SubmissionID, args.UserID, args.UserEmail).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	s.Require().NoError(repo.LinkUser(s.T().Context(), args))

	// заявка уже привязана или израсходована удаленным аккаунтом.
	s.pool.ExpectExec(linkQuery).
		WithArgs(args.SubmissionID, args.UserID, args.UserEmail).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	s.Require().ErrorIs(repo.LinkUser(s.T().Context(), args), domain.ErrRecordNotFound)
}
