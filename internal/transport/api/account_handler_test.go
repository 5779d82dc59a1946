package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/service"
)

type AccountHandlerTestSuite struct {
	handlerSuite
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestUnauthorized() {
	routes := []struct {
		method string
		url    string
	}{
		{http.MethodGet, RouteGroup + DashboardRoute},
		{http.MethodGet, RouteGroup + ReferralsRoute},
		{http.MethodPut, RouteGroup + MethodRoute},
		{http.MethodPost, RouteGroup + WithdrawalsRoute},
		{http.MethodGet, RouteGroup + WithdrawalsRoute},
	}
	for _, r := range routes {
		s.Run(r.method+" "+r.url, func() {
			res := s.request(r.method, r.url, nil, "")
			defer res.Body.Close()
			s.Equal(http.StatusUnauthorized, res.StatusCode)
		})
	}

	res := s.request(http.MethodGet, RouteGroup+DashboardRoute, nil, "garbage")
	defer res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *AccountHandlerTestSuite) TestDashboard() {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s.mockUserService.EXPECT().Dashboard(gomock.Any(), s.userID).
		Return(&service.Dashboard{
			Profile: &domain.Profile{
				ID:               s.userID,
				Username:         "ali_khan",
				Balance:          decimal.NewFromInt(600),
				Invested:         true,
				PlanID:           "1",
				InvestmentAmount: decimal.NewFromInt(6000),
			},
			PlanName:      "Starter Plan",
			TotalEarned:   decimal.NewFromInt(400),
			ReferralBonus: decimal.NewFromInt(200),
			Earnings: []domain.Earning{
				{ID: 2, UserID: s.userID, Amount: decimal.NewFromInt(200), EarnedOn: day},
				{ID: 1, UserID: s.userID, Amount: decimal.NewFromInt(200), EarnedOn: day.AddDate(0, 0, -1)},
			},
		}, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+DashboardRoute, nil, s.userToken)
	s.Equal(http.StatusOK, res.StatusCode)

	var body DashboardResponse
	s.decode(res, &body)
	s.Equal("Starter Plan", body.PlanName)
	s.InDelta(600.0, body.Profile.Balance, 0.001)
	s.InDelta(400.0, body.TotalEarned, 0.001)
	s.Len(body.Earnings, 2)
}

func (s *AccountHandlerTestSuite) TestReferrals() {
	invitee := uuid.New()
	s.mockReferralService.EXPECT().Summary(gomock.Any(), s.userID).
		Return(&service.ReferralSummary{
			Link: "https://envo.example/invest?ref=" + s.userID.String(),
			Referrals: []domain.Referral{
				{
					ID:             1,
					ReferrerID:     s.userID,
					ReferredUserID: uuid.NullUUID{UUID: invitee, Valid: true},
					Status:         domain.ReferralStatusInvested,
					BonusAmount:    decimal.NewFromInt(200),
				},
				{ID: 2, ReferrerID: s.userID, Status: domain.ReferralStatusInvested, BonusAmount: decimal.NewFromInt(800)},
			},
			Usernames:     map[uuid.UUID]string{invitee: "bilal"},
			TotalBonus:    decimal.NewFromInt(1000),
			InvestedCount: 2,
		}, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+ReferralsRoute, nil, s.userToken)
	s.Equal(http.StatusOK, res.StatusCode)

	var body ReferralsResponse
	s.decode(res, &body)
	s.Contains(body.Link, "/invest?ref="+s.userID.String())
	s.Require().Len(body.Referrals, 2)
	s.Equal("bilal", body.Referrals[0].Username)
	s.Equal(service.PendingRegistrationName, body.Referrals[1].Username)
	s.InDelta(1000.0, body.TotalBonus, 0.001)
}

func (s *AccountHandlerTestSuite) TestSaveWithdrawalMethod() {
	method := domain.WithdrawalMethod{Method: "jazzcash", AccountName: "Ali Khan", AccountNumber: "03001234567"}
	s.mockWithdrawalService.EXPECT().SaveMethod(gomock.Any(), s.userID, method).Return(nil).Times(1)

	res := s.jsonRequest(http.MethodPut, RouteGroup+MethodRoute, method, s.userToken)
	defer res.Body.Close()
	s.Equal(http.StatusNoContent, res.StatusCode)

	s.Run("service rejects method", func() {
		bad := domain.WithdrawalMethod{Method: "paypal", AccountName: "Ali Khan", AccountNumber: "03001234567"}
		s.mockWithdrawalService.EXPECT().SaveMethod(gomock.Any(), s.userID, bad).
			Return(domain.NewValidationError("method", "unsupported payout method")).Times(1)
		res := s.jsonRequest(http.MethodPut, RouteGroup+MethodRoute, bad, s.userToken)
		s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
		s.Contains(s.errorText(res), "unsupported payout method")
	})
}

func (s *AccountHandlerTestSuite) TestRequestWithdrawal() {
	amount := decimal.NewFromInt(600)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "referral lock", err: domain.ErrReferralLock, wantStatus: http.StatusForbidden},
		{name: "not enough balance", err: domain.ErrNotEnoughBalance, wantStatus: http.StatusPaymentRequired},
		{name: "no payout method", err: domain.ErrPayoutMethodMissing, wantStatus: http.StatusPreconditionFailed},
		{
			name:       "below minimum",
			err:        domain.NewValidationError("amount", "minimum withdrawal is 600"),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockWithdrawalService.EXPECT().Request(gomock.Any(), s.userID, gomock.Any()).
				Return(nil, t.err).Times(1)
			res := s.jsonRequest(http.MethodPost, RouteGroup+WithdrawalsRoute, map[string]any{"amount": 600}, s.userToken)
			defer res.Body.Close()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}

	s.Run("accepted", func() {
		s.mockWithdrawalService.EXPECT().Request(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, userID uuid.UUID, got decimal.Decimal) (*domain.Withdrawal, error) {
				s.True(amount.Equal(got))
				return &domain.Withdrawal{
					ID:     11,
					UserID: userID,
					Amount: got,
					Method: "jazzcash",
					Status: domain.WithdrawalStatusProcessing,
				}, nil
			}).Times(1)
		res := s.jsonRequest(http.MethodPost, RouteGroup+WithdrawalsRoute, map[string]any{"amount": "600"}, s.userToken)
		s.Equal(http.StatusCreated, res.StatusCode)
		var w WithdrawalResponse
		s.decode(res, &w)
		s.Equal("processing", w.Status)
		s.InDelta(600.0, w.Amount, 0.001)
	})
}

func (s *AccountHandlerTestSuite) TestWithdrawalsHistory() {
	s.mockWithdrawalService.EXPECT().History(gomock.Any(), s.userID).Return(nil, nil).Times(1)
	res := s.request(http.MethodGet, RouteGroup+WithdrawalsRoute, nil, s.userToken)
	res.Body.Close()
	s.Equal(http.StatusNoContent, res.StatusCode)

	s.mockWithdrawalService.EXPECT().History(gomock.Any(), s.userID).
		Return([]domain.Withdrawal{
			{ID: 2, Amount: decimal.NewFromInt(700), Status: domain.WithdrawalStatusApproved},
			{ID: 1, Amount: decimal.NewFromInt(600), Status: domain.WithdrawalStatusRejected},
		}, nil).Times(1)
	res = s.request(http.MethodGet, RouteGroup+WithdrawalsRoute, nil, s.userToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var ws []WithdrawalResponse
	s.decode(res, &ws)
	s.Require().Len(ws, 2)
	s.Equal("approved", ws[0].Status)
}
