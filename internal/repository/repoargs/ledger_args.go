package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
)

type CreateEarning struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	EarnedOn time.Time
}

type CreateReferral struct {
	ReferrerID     uuid.UUID
	ReferredUserID uuid.NullUUID
	Status         domain.ReferralStatus
	BonusAmount    decimal.Decimal
}

type CreateWithdrawal struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Method        string
	AccountName   string
	AccountNumber string
}

// ListWithdrawals пустой Status означает выборку по всем статусам.
type ListWithdrawals struct {
	Status domain.WithdrawalStatus
	Limit  uint
}

type CreateAlert struct {
	Source  string
	Subject string
	Message string
}
