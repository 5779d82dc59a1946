package api

import (
	"context"
	"errors"
	"io"
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

type AdminHandlerTestSuite struct {
	handlerSuite
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestAdminOnly() {
	res := s.request(http.MethodGet, RouteGroup+AdminStatsRoute, nil, "")
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)

	res = s.request(http.MethodGet, RouteGroup+AdminStatsRoute, nil, s.userToken)
	s.Equal(http.StatusForbidden, res.StatusCode)
	s.Equal("admin access required", s.errorText(res))
}

func (s *AdminHandlerTestSuite) TestPendingSubmissions() {
	s.mockSubmissionService.EXPECT().ListPending(gomock.Any()).
		Return([]domain.PaymentSubmission{
			{ID: 1, Status: domain.SubmissionStatusPending, ScreenshotURL: "https://cdn.example/1.png"},
			{ID: 2, Status: domain.SubmissionStatusPending},
		}, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+AdminSubmissionsRoute, nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var subs []SubmissionResponse
	s.decode(res, &subs)
	s.Require().Len(subs, 2)
	s.Equal("https://cdn.example/1.png", subs[0].ScreenshotURL)
}

func (s *AdminHandlerTestSuite) TestDecideSubmission() {
	url := RouteGroup + "/admin/submissions/5/decision"

	s.Run("approve with failed bonus", func() {
		outcome := &domain.Outcome{}
		outcome.Fail(domain.SideEffectReferralBonus, errors.New("credit failed"))
		s.mockSubmissionService.EXPECT().Decide(gomock.Any(), int64(5), domain.SubmissionApprove).
			Return(&domain.PaymentSubmission{ID: 5, Status: domain.SubmissionStatusApproved}, outcome, nil).Times(1)

		res := s.jsonRequest(http.MethodPost, url, map[string]string{"decision": "approved"}, s.adminToken)
		s.Equal(http.StatusOK, res.StatusCode)
		var body SubmissionDecisionResponse
		s.decode(res, &body)
		s.Equal("approved", body.Submission.Status)
		s.True(body.Outcome.Degraded)
		s.Equal([]string{"referral_bonus"}, body.Outcome.FailedEffects)
	})

	s.Run("already decided", func() {
		s.mockSubmissionService.EXPECT().Decide(gomock.Any(), int64(5), domain.SubmissionReject).
			Return(nil, nil, domain.ErrInvalidTransition).Times(1)
		res := s.jsonRequest(http.MethodPost, url, map[string]string{"decision": "rejected"}, s.adminToken)
		defer res.Body.Close()
		s.Equal(http.StatusConflict, res.StatusCode)
	})

	s.Run("unknown decision", func() {
		res := s.jsonRequest(http.MethodPost, url, map[string]string{"decision": "maybe"}, s.adminToken)
		defer res.Body.Close()
		s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	})

	s.Run("bad id", func() {
		res := s.jsonRequest(http.MethodPost, RouteGroup+"/admin/submissions/abc/decision",
			map[string]string{"decision": "approved"}, s.adminToken)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Equal("invalid id", s.errorText(res))
	})
}

func (s *AdminHandlerTestSuite) TestWithdrawals() {
	userID := uuid.New()
	s.mockAdminService.EXPECT().
		Withdrawals(gomock.Any(), domain.WithdrawalStatusProcessing, uint(20)).
		Return([]service.WithdrawalListItem{
			{
				Withdrawal: domain.Withdrawal{ID: 3, UserID: userID, Amount: decimal.NewFromInt(600)},
				Username:   "ali_khan",
			},
		}, nil).Times(1)
	s.mockAdminService.EXPECT().
		Withdrawals(gomock.Any(), domain.WithdrawalStatus(""), maxAdminListLimit).
		Return(nil, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+AdminWithdrawalsRoute+"?status=processing&limit=20", nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var ws []WithdrawalResponse
	s.decode(res, &ws)
	s.Require().Len(ws, 1)
	s.Equal("ali_khan", ws[0].Username)

	res = s.request(http.MethodGet, RouteGroup+AdminWithdrawalsRoute+"?limit=100000", nil, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodGet, RouteGroup+AdminWithdrawalsRoute+"?status=lost", nil, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestDecideWithdrawal() {
	s.mockWithdrawalService.EXPECT().Decide(gomock.Any(), int64(9), domain.WithdrawalApprove).
		Return(nil, domain.ErrNotEnoughBalance).Times(1)
	s.mockWithdrawalService.EXPECT().Decide(gomock.Any(), int64(9), domain.WithdrawalReject).
		Return(&domain.Withdrawal{ID: 9, Status: domain.WithdrawalStatusRejected}, nil).Times(1)

	url := RouteGroup + "/admin/withdrawals/9/decision"
	res := s.jsonRequest(http.MethodPost, url, map[string]string{"decision": "approved"}, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusPaymentRequired, res.StatusCode)

	res = s.jsonRequest(http.MethodPost, url, map[string]string{"decision": "rejected"}, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var w WithdrawalResponse
	s.decode(res, &w)
	s.Equal("rejected", w.Status)
}

func (s *AdminHandlerTestSuite) TestUsers() {
	s.mockAdminService.EXPECT().Users(gomock.Any(), "ali", defaultAdminListLimit, uint(10)).
		Return([]domain.Profile{{ID: uuid.New(), Username: "ali_khan", Email: "ali@example.com"}}, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+AdminUsersRoute+"?q=ali&offset=10", nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var users []ProfileResponse
	s.decode(res, &users)
	s.Require().Len(users, 1)
	s.Equal("ali_khan", users[0].Username)
}

func (s *AdminHandlerTestSuite) TestUserDetails() {
	userID := uuid.New()
	s.mockAdminService.EXPECT().UserDetails(gomock.Any(), userID).
		Return(&service.UserDetails{
			Profile:     &domain.Profile{ID: userID, Username: "ali_khan"},
			Earnings:    []domain.Earning{{ID: 1, Amount: decimal.NewFromInt(200)}},
			Withdrawals: []domain.Withdrawal{},
		}, nil).Times(1)
	s.mockAdminService.EXPECT().UserDetails(gomock.Any(), gomock.Not(userID)).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	res := s.request(http.MethodGet, RouteGroup+"/admin/users/"+userID.String(), nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var body UserDetailsResponse
	s.decode(res, &body)
	s.Equal("ali_khan", body.Profile.Username)
	s.Len(body.Earnings, 1)

	res = s.request(http.MethodGet, RouteGroup+"/admin/users/"+uuid.NewString(), nil, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusNotFound, res.StatusCode)

	res = s.request(http.MethodGet, RouteGroup+"/admin/users/42", nil, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestExportUser() {
	userID := uuid.New()
	s.mockAdminService.EXPECT().UserDetails(gomock.Any(), userID).
		Return(&service.UserDetails{Profile: &domain.Profile{ID: userID, Username: "ali_khan"}}, nil).Times(1)
	s.mockAdminService.EXPECT().ExportUserDetails(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, w io.Writer) error {
			_, err := io.WriteString(w, "Category,Key,Value\nProfile,Username,ali_khan\n")
			return err
		}).Times(1)

	res := s.request(http.MethodGet, RouteGroup+"/admin/users/"+userID.String()+"/export", nil, s.adminToken)
	defer res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("text/csv; charset=utf-8", res.Header.Get("Content-Type"))
	s.Equal(`attachment; filename="ali_khan_details.csv"`, res.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.Equal("Category,Key,Value\nProfile,Username,ali_khan\n", string(data))
}

func (s *AdminHandlerTestSuite) TestDeleteUser() {
	userID := uuid.New()
	s.mockAdminService.EXPECT().DeleteUser(gomock.Any(), userID).Return(nil).Times(1)

	res := s.request(http.MethodDelete, RouteGroup+"/admin/users/"+userID.String(), nil, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusNoContent, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestStats() {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s.mockAdminService.EXPECT().Stats(gomock.Any()).
		Return(&service.AdminStats{
			TotalUsers:          10,
			InvestedUsers:       7,
			TotalInvestment:     decimal.NewFromInt(84000),
			ApprovedWithdrawals: decimal.NewFromInt(1800),
			Signups:             []service.DailyPoint{{Day: day, Count: 3}},
			Withdrawals:         []service.DailyPoint{{Day: day, Count: 1, Amount: decimal.NewFromInt(600)}},
		}, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+AdminStatsRoute, nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var body StatsResponse
	s.decode(res, &body)
	s.Equal(int64(10), body.TotalUsers)
	s.InDelta(84000.0, body.TotalInvestment, 0.001)
	s.Require().Len(body.Signups, 1)
	s.Equal("2026-03-14", body.Signups[0].Day)
	s.InDelta(600.0, body.Withdrawals[0].Amount, 0.001)
}

func (s *AdminHandlerTestSuite) TestAlerts() {
	s.mockAlertService.EXPECT().List(gomock.Any(), true).
		Return([]domain.OperatorAlert{{ID: 1, Source: "accrual", Subject: "user", Message: "boom"}}, nil).Times(1)
	s.mockAlertService.EXPECT().List(gomock.Any(), false).Return(nil, nil).Times(1)

	resolved := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.mockAlertService.EXPECT().Resolve(gomock.Any(), int64(1)).
		Return(&domain.OperatorAlert{ID: 1, ResolvedAt: &resolved}, nil).Times(1)

	res := s.request(http.MethodGet, RouteGroup+AdminAlertsRoute, nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var alerts []AlertResponse
	s.decode(res, &alerts)
	s.Require().Len(alerts, 1)
	s.Nil(alerts[0].ResolvedAt)

	res = s.request(http.MethodGet, RouteGroup+AdminAlertsRoute+"?all=true", nil, s.adminToken)
	res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+"/admin/alerts/1/resolve", nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
	var alert AlertResponse
	s.decode(res, &alert)
	s.Require().NotNil(alert.ResolvedAt)
}
