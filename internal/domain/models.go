package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Identity учетная запись для входа. ID совпадает с ID профиля.
type Identity struct {
	ID                uuid.UUID
	CreatedAt         time.Time
	Email             string
	EncryptedPassword string
}

type PaymentSubmission struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AccountName       string
	AccountNumber     string
	Platform          string
	ScreenshotPath    string
	ScreenshotURL     string
	Status            SubmissionStatus
	ReferrerID        uuid.NullUUID
	PlanID            string
	InvestmentAmount  decimal.Decimal
	DailyReturnAmount decimal.Decimal
	UserID            uuid.NullUUID
	UserEmail         string
}

// Linked true если по заявке уже зарегистрирован аккаунт. user_email сохраняется и после удаления
// пользователя, поэтому заявка остается израсходованной.
func (s *PaymentSubmission) Linked() bool {
	return s.UserID.Valid || s.UserEmail != ""
}

// WithdrawalMethod реквизиты для выплат, хранятся в профиле.
type WithdrawalMethod struct {
	Method        string `json:"method"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

type Profile struct {
	ID                uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	Email             string
	Balance           decimal.Decimal
	Invested          bool
	PlanID            string
	InvestmentAmount  decimal.Decimal
	DailyReturnAmount decimal.Decimal
	InvestmentDate    time.Time
	WithdrawalMethod  *WithdrawalMethod
}

type Earning struct {
	ID        int64
	CreatedAt time.Time
	UserID    uuid.UUID
	Amount    decimal.Decimal
	EarnedOn  time.Time
}

type Referral struct {
	ID             int64
	CreatedAt      time.Time
	ReferrerID     uuid.UUID
	ReferredUserID uuid.NullUUID
	Status         ReferralStatus
	BonusAmount    decimal.Decimal
}

type Withdrawal struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Method        string
	AccountName   string
	AccountNumber string
	Status        WithdrawalStatus
}

// OperatorAlert запись о сбое побочного эффекта, которую должен увидеть оператор.
type OperatorAlert struct {
	ID         int64
	CreatedAt  time.Time
	Source     string
	Subject    string
	Message    string
	ResolvedAt *time.Time
}
