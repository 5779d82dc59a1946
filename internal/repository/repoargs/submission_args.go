package repoargs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSubmission struct {
	AccountName       string
	AccountNumber     string
	Platform          string
	ScreenshotPath    string
	ScreenshotURL     string
	ReferrerID        uuid.NullUUID
	PlanID            string
	InvestmentAmount  decimal.Decimal
	DailyReturnAmount decimal.Decimal
}

type LinkSubmissionUser struct {
	SubmissionID int64
	UserID       uuid.UUID
	UserEmail    string
}
