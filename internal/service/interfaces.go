package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type IdentityRepository interface {
	Create(ctx context.Context, args repoargs.CreateIdentity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, args repoargs.CreateProfile) (*domain.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Conflicts(ctx context.Context, username, email string) (*repoargs.ProfileConflicts, error)
	InvestedIDs(ctx context.Context) ([]uuid.UUID, error)
	List(ctx context.Context, args repoargs.ListProfiles) ([]domain.Profile, error)
	AddBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	UpdateWithdrawalMethod(ctx context.Context, id uuid.UUID, method domain.WithdrawalMethod) error
	UsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	Stats(ctx context.Context) (*repoargs.ProfileStats, error)
	DailySignups(ctx context.Context, from time.Time) ([]repoargs.DailyTotal, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, args repoargs.CreateSubmission) (*domain.PaymentSubmission, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.PaymentSubmission, error)
	FindLatestByAccountNumber(ctx context.Context, accountNumber string) (*domain.PaymentSubmission, error)
	ListByStatus(ctx context.Context, status domain.SubmissionStatus, limit uint) ([]domain.PaymentSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) (*domain.PaymentSubmission, error)
	LinkUser(ctx context.Context, args repoargs.LinkSubmissionUser) error
}

type EarningRepository interface {
	Create(ctx context.Context, args repoargs.CreateEarning) (*domain.Earning, error)
	UserIDsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit uint) ([]domain.Earning, error)
	SumByUserID(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type ReferralRepository interface {
	Create(ctx context.Context, args repoargs.CreateReferral) (*domain.Referral, error)
	BackfillLatestUnresolved(ctx context.Context, referrerID, userID uuid.UUID) (*domain.Referral, error)
	GetByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error)
	CountByStatus(ctx context.Context, referrerID uuid.UUID, status domain.ReferralStatus) (int64, error)
	SumBonusByStatus(ctx context.Context, referrerID uuid.UUID, status domain.ReferralStatus) (decimal.Decimal, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int64, status domain.WithdrawalStatus) (*domain.Withdrawal, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
	CountByStatus(ctx context.Context, userID uuid.UUID, status domain.WithdrawalStatus) (int64, error)
	List(ctx context.Context, args repoargs.ListWithdrawals) ([]domain.Withdrawal, error)
	SumApproved(ctx context.Context) (decimal.Decimal, error)
	DailyRequested(ctx context.Context, from time.Time) ([]repoargs.DailyTotal, error)
}

type AlertRepository interface {
	Create(ctx context.Context, args repoargs.CreateAlert) (*domain.OperatorAlert, error)
	List(ctx context.Context, onlyOpen bool, limit uint) ([]domain.OperatorAlert, error)
	Resolve(ctx context.Context, id int64) (*domain.OperatorAlert, error)
}

// ObjectStorage хранилище скриншотов оплаты.
type ObjectStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

// IdentityProvider учетные записи для входа.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*domain.Identity, error)
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WelcomeNotifier ставит приветственное письмо в очередь отправки. Ошибка означает, что письмо в очередь
// не попало.
type WelcomeNotifier interface {
	NotifyWelcome(ctx context.Context, email, username string) error
}

// Locker взаимное исключение между запусками фоновых задач. ok=false означает, что блокировка занята.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(), ok bool, err error)
}

// ReferralAwarder начисление бонуса рефереру при одобрении оплаты приглашенного.
type ReferralAwarder interface {
	AwardApprovalBonus(ctx context.Context, referrerID uuid.UUID, inviteePlanID string) (*domain.Referral, error)
}

// ReferralBackfiller связывает запись реферала с зарегистрированным приглашенным внутри транзакции tx.
type ReferralBackfiller interface {
	BackfillReferredUser(ctx context.Context, tx uow.TX, referrerID, userID uuid.UUID) error
}

type AlertRaiser interface {
	Raise(ctx context.Context, source, subject string, err error)
	RaiseOutcome(ctx context.Context, subject string, outcome *domain.Outcome)
}

type Metrics interface {
	AlertRaised(source string)
	SubmissionDecided(decision string)
	EarningsPaid(count int)
	WithdrawalRequested()
}
