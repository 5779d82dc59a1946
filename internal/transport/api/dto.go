package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/service"
)

type SubmissionResponse struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"createdAt"`
	AccountName       string    `json:"accountName"`
	AccountNumber     string    `json:"accountNumber"`
	Platform          string    `json:"platform"`
	ScreenshotURL     string    `json:"screenshotUrl,omitempty"`
	Status            string    `json:"status"`
	ReferrerID        string    `json:"referrerId,omitempty"`
	PlanID            string    `json:"planId"`
	InvestmentAmount  float64   `json:"investmentAmount"`
	DailyReturnAmount float64   `json:"dailyReturnAmount"`
}

func newSubmissionResponse(s *domain.PaymentSubmission) SubmissionResponse {
	res := SubmissionResponse{
		ID:                s.ID,
		CreatedAt:         s.CreatedAt,
		AccountName:       s.AccountName,
		AccountNumber:     s.AccountNumber,
		Platform:          s.Platform,
		ScreenshotURL:     s.ScreenshotURL,
		Status:            string(s.Status),
		PlanID:            s.PlanID,
		InvestmentAmount:  s.InvestmentAmount.InexactFloat64(),
		DailyReturnAmount: s.DailyReturnAmount.InexactFloat64(),
	}
	if s.ReferrerID.Valid {
		res.ReferrerID = s.ReferrerID.UUID.String()
	}
	return res
}

type ProfileResponse struct {
	ID                uuid.UUID                `json:"id"`
	CreatedAt         time.Time                `json:"createdAt"`
	Username          string                   `json:"username"`
	Email             string                   `json:"email"`
	Balance           float64                  `json:"balance"`
	Invested          bool                     `json:"invested"`
	PlanID            string                   `json:"planId"`
	InvestmentAmount  float64                  `json:"investmentAmount"`
	DailyReturnAmount float64                  `json:"dailyReturnAmount"`
	InvestmentDate    time.Time                `json:"investmentDate"`
	WithdrawalMethod  *domain.WithdrawalMethod `json:"withdrawalMethod,omitempty"`
}

func newProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                p.ID,
		CreatedAt:         p.CreatedAt,
		Username:          p.Username,
		Email:             p.Email,
		Balance:           p.Balance.InexactFloat64(),
		Invested:          p.Invested,
		PlanID:            p.PlanID,
		InvestmentAmount:  p.InvestmentAmount.InexactFloat64(),
		DailyReturnAmount: p.DailyReturnAmount.InexactFloat64(),
		InvestmentDate:    p.InvestmentDate,
		WithdrawalMethod:  p.WithdrawalMethod,
	}
}

type EarningResponse struct {
	Amount   float64   `json:"amount"`
	EarnedOn string    `json:"earnedOn"`
	PaidAt   time.Time `json:"paidAt"`
}

func newEarningsResponse(earnings []domain.Earning) []EarningResponse {
	res := make([]EarningResponse, len(earnings))
	for i, e := range earnings {
		res[i] = EarningResponse{
			Amount:   e.Amount.InexactFloat64(),
			EarnedOn: e.EarnedOn.Format(time.DateOnly),
			PaidAt:   e.CreatedAt,
		}
	}
	return res
}

type WithdrawalResponse struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UserID        uuid.UUID `json:"userId"`
	Username      string    `json:"username,omitempty"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	AccountName   string    `json:"accountName"`
	AccountNumber string    `json:"accountNumber"`
	Status        string    `json:"status"`
}

func newWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:            w.ID,
		CreatedAt:     w.CreatedAt,
		UserID:        w.UserID,
		Amount:        w.Amount.InexactFloat64(),
		Method:        w.Method,
		AccountName:   w.AccountName,
		AccountNumber: w.AccountNumber,
		Status:        string(w.Status),
	}
}

func newWithdrawalsResponse(ws []domain.Withdrawal) []WithdrawalResponse {
	res := make([]WithdrawalResponse, len(ws))
	for i := range ws {
		res[i] = newWithdrawalResponse(&ws[i])
	}
	return res
}

type PlanResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	DailyReturn   float64 `json:"dailyReturn"`
	ReferralBonus float64 `json:"referralBonus"`
}

func newPlansResponse(ps []plans.Plan) []PlanResponse {
	res := make([]PlanResponse, len(ps))
	for i, p := range ps {
		res[i] = PlanResponse{
			ID:            p.ID,
			Name:          p.Name,
			Amount:        p.Amount.InexactFloat64(),
			DailyReturn:   p.DailyReturn.InexactFloat64(),
			ReferralBonus: p.ReferralBonus.InexactFloat64(),
		}
	}
	return res
}

type ReferralItemResponse struct {
	Username    string    `json:"username"`
	Status      string    `json:"status"`
	BonusAmount float64   `json:"bonusAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReferralsResponse struct {
	Link          string                 `json:"link"`
	TotalBonus    float64                `json:"totalBonus"`
	InvestedCount int64                  `json:"investedCount"`
	Referrals     []ReferralItemResponse `json:"referrals"`
}

func newReferralsResponse(s *service.ReferralSummary) ReferralsResponse {
	items := make([]ReferralItemResponse, len(s.Referrals))
	for i, ref := range s.Referrals {
		items[i] = ReferralItemResponse{
			Username:    s.ReferredUsername(ref),
			Status:      string(ref.Status),
			BonusAmount: ref.BonusAmount.InexactFloat64(),
			CreatedAt:   ref.CreatedAt,
		}
	}
	return ReferralsResponse{
		Link:          s.Link,
		TotalBonus:    s.TotalBonus.InexactFloat64(),
		InvestedCount: s.InvestedCount,
		Referrals:     items,
	}
}

type OutcomeResponse struct {
	Degraded      bool     `json:"degraded"`
	FailedEffects []string `json:"failedEffects,omitempty"`
}

func newOutcomeResponse(o *domain.Outcome) OutcomeResponse {
	return OutcomeResponse{Degraded: o.Degraded(), FailedEffects: o.FailedEffects()}
}

type AlertResponse struct {
	ID         int64      `json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	Source     string     `json:"source"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func newAlertResponse(a *domain.OperatorAlert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt,
		Source:     a.Source,
		Subject:    a.Subject,
		Message:    a.Message,
		ResolvedAt: a.ResolvedAt,
	}
}
