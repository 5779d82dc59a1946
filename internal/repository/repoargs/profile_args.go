package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProfile struct {
	ID                uuid.UUID
	Username          string
	Email             string
	Balance           decimal.Decimal
	PlanID            string
	InvestmentAmount  decimal.Decimal
	DailyReturnAmount decimal.Decimal
	InvestmentDate    time.Time
}

// ProfileConflicts занятость уникальных полей профиля.
type ProfileConflicts struct {
	UsernameTaken bool
	EmailTaken    bool
}

// ListProfiles параметры выборки профилей. Query ищет подстроку в username или email без учета регистра.
type ListProfiles struct {
	Query  string
	Limit  uint
	Offset uint
}

type ProfileStats struct {
	TotalUsers      int64
	InvestedUsers   int64
	TotalInvestment decimal.Decimal
}

// DailyTotal агрегат за календарный день.
type DailyTotal struct {
	Day    time.Time
	Count  int64
	Amount decimal.Decimal
}
