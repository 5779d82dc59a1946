package service

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/internal/service/mocks"
	"github.com/sajidali832/envo4/pkg/uow"
	uowmocks "github.com/sajidali832/envo4/pkg/uow/mocks"
)

type AlertServiceTestSuite struct {
	suite.Suite
	mockAlertRepo *mocks.MockAlertRepository
	mockMetrics   *mocks.MockMetrics
	alertService  *AlertService
}

func TestAlertServiceSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}

func (s *AlertServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(mockCtrl)
	s.mockAlertRepo = mocks.NewMockAlertRepository(mockCtrl)
	s.mockMetrics = mocks.NewMockMetrics(mockCtrl)

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AlertRepoName)).
		Return(s.mockAlertRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)
	svc, err := NewAlertService(mockUOW, s.mockMetrics, l)
	s.Require().NoError(err)
	s.alertService = svc
}

func (s *AlertServiceTestSuite) TestRaise() {
	s.mockMetrics.EXPECT().AlertRaised("proof_deletion").Times(2)
	s.mockAlertRepo.EXPECT().Create(gomock.Any(), repoargs.CreateAlert{
		Source:  "proof_deletion",
		Subject: "payment submission 1",
		Message: "bucket unavailable",
	}).Return(&domain.OperatorAlert{ID: 1}, nil)

	s.alertService.Raise(s.T().Context(), "proof_deletion", "payment submission 1", errors.New("bucket unavailable"))

	// ошибка сохранения не паникует и не возвращается.
	s.mockAlertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is down"))
	s.alertService.Raise(s.T().Context(), "proof_deletion", "payment submission 2", errors.New("bucket unavailable"))
}

func (s *AlertServiceTestSuite) TestRaiseOutcome() {
	s.alertService.RaiseOutcome(s.T().Context(), "nothing failed", new(domain.Outcome))
	s.alertService.RaiseOutcome(s.T().Context(), "nil outcome", nil)

	outcome := new(domain.Outcome)
	outcome.Fail(domain.SideEffectReferralBonus, errors.New("a"))
	outcome.Fail(domain.SideEffectWelcomeEmail, errors.New("b"))

	s.mockMetrics.EXPECT().AlertRaised(string(domain.SideEffectReferralBonus))
	s.mockMetrics.EXPECT().AlertRaised(string(domain.SideEffectWelcomeEmail))
	s.mockAlertRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.OperatorAlert{}, nil).Times(2)

	s.alertService.RaiseOutcome(s.T().Context(), "registration of ali", outcome)
}
