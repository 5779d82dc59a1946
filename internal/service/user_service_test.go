package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/internal/service/mocks"
	"github.com/sajidali832/envo4/internal/service/tokens"
	"github.com/sajidali832/envo4/pkg/uow"
	uowmocks "github.com/sajidali832/envo4/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockProfileRepo    *mocks.MockProfileRepository
	mockSubmissionRepo *mocks.MockSubmissionRepository
	mockEarningRepo    *mocks.MockEarningRepository
	mockReferralRepo   *mocks.MockReferralRepository
	mockIdentity       *mocks.MockIdentityProvider
	mockBackfiller     *mocks.MockReferralBackfiller
	mockNotifier       *mocks.MockWelcomeNotifier
	mockAlerts         *mocks.MockAlertRaiser
	jwtSecret          []byte
	userService        *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockProfileRepo = mocks.NewMockProfileRepository(mockCtrl)
	s.mockSubmissionRepo = mocks.NewMockSubmissionRepository(mockCtrl)
	s.mockEarningRepo = mocks.NewMockEarningRepository(mockCtrl)
	s.mockReferralRepo = mocks.NewMockReferralRepository(mockCtrl)
	s.mockIdentity = mocks.NewMockIdentityProvider(mockCtrl)
	s.mockBackfiller = mocks.NewMockReferralBackfiller(mockCtrl)
	s.mockNotifier = mocks.NewMockWelcomeNotifier(mockCtrl)
	s.mockAlerts = mocks.NewMockAlertRaiser(mockCtrl)
	s.jwtSecret = []byte("secret")

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SubmissionRepoName)).
		Return(s.mockSubmissionRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.EarningRepoName)).
		Return(s.mockEarningRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ReferralRepoName)).
		Return(s.mockReferralRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.SubmissionRepoName)).
		Return(s.mockSubmissionRepo, nil).AnyTimes()

	userService, err := NewUserService(s.mockUOW, UserServiceArgs{
		Identity:       s.mockIdentity,
		Referrals:      s.mockBackfiller,
		Notifier:       s.mockNotifier,
		Alerts:         s.mockAlerts,
		Catalog:        plans.Default(),
		JWTTokenSecret: s.jwtSecret,
		AdminEmail:     "admin@envo.test",
	})
	s.Require().NoError(err)
	s.userService = userService
}

func (s *UserServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *UserServiceTestSuite) registerArgs() RegisterUserArgs {
	return RegisterUserArgs{
		Username: gofakeit.LetterN(10),
		Email:    strings.ToLower(gofakeit.Email()),
		Password: gofakeit.Password(true, true, true, false, false, 12),
		Phone:    "03001234567",
	}
}

func approvedSubmission(referrer uuid.NullUUID) *domain.PaymentSubmission {
	return &domain.PaymentSubmission{
		ID:                7,
		AccountNumber:     "03001234567",
		Status:            domain.SubmissionStatusApproved,
		ReferrerID:        referrer,
		PlanID:            "1",
		InvestmentAmount:  decimal.NewFromInt(6000),
		DailyReturnAmount: decimal.NewFromInt(200),
	}
}

// createdProfile мок вставки профиля, возвращающий профиль из аргументов.
func createdProfile(_ context.Context, args repoargs.CreateProfile) (*domain.Profile, error) {
	return &domain.Profile{
		ID:                args.ID,
		Username:          args.Username,
		Email:             args.Email,
		Balance:           args.Balance,
		Invested:          true,
		PlanID:            args.PlanID,
		InvestmentAmount:  args.InvestmentAmount,
		DailyReturnAmount: args.DailyReturnAmount,
		InvestmentDate:    args.InvestmentDate,
	}, nil
}

func (s *UserServiceTestSuite) TestRegisterWithoutReferrer() {
	args := s.registerArgs()
	identity := &domain.Identity{ID: uuid.New(), Email: args.Email}

	s.mockSubmissionRepo.EXPECT().FindLatestByAccountNumber(gomock.Any(), "03001234567").
		Return(approvedSubmission(uuid.NullUUID{}), nil)
	s.mockProfileRepo.EXPECT().Conflicts(gomock.Any(), args.Username, args.Email).
		Return(&repoargs.ProfileConflicts{}, nil)
	s.mockIdentity.EXPECT().SignUp(gomock.Any(), args.Email, args.Password).Return(identity, nil)
	s.expectTx()
	s.mockProfileRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createdProfile)
	s.mockSubmissionRepo.EXPECT().LinkUser(gomock.Any(), repoargs.LinkSubmissionUser{
		SubmissionID: 7,
		UserID:       identity.ID,
		UserEmail:    args.Email,
	}).Return(nil)
	s.mockNotifier.EXPECT().NotifyWelcome(gomock.Any(), args.Email, args.Username).Return(nil)
	s.mockAlerts.EXPECT().RaiseOutcome(gomock.Any(), gomock.Any(), gomock.Any())

	res, err := s.userService.Register(s.T().Context(), args)
	s.Require().NoError(err)

	s.True(res.Profile.Balance.IsZero())
	s.True(res.Profile.Invested)
	s.Equal("1", res.Profile.PlanID)
	s.True(decimal.NewFromInt(6000).Equal(res.Profile.InvestmentAmount))
	s.False(res.Outcome.Degraded())

	claims, tokenErr := tokens.ValidateUserJWT(res.Token, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.Equal(identity.ID, claims.UserID)
	s.False(claims.Admin)
}

func (s *UserServiceTestSuite) TestRegisterWithReferrer() {
	args := s.registerArgs()
	referrer := uuid.New()
	identity := &domain.Identity{ID: uuid.New(), Email: args.Email}

	s.mockSubmissionRepo.EXPECT().FindLatestByAccountNumber(gomock.Any(), gomock.Any()).
		Return(approvedSubmission(uuid.NullUUID{UUID: referrer, Valid: true}), nil)
	s.mockProfileRepo.EXPECT().Conflicts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&repoargs.ProfileConflicts{}, nil)
	s.mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
	s.expectTx()
	s.mockProfileRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createdProfile)
	s.mockSubmissionRepo.EXPECT().LinkUser(gomock.Any(), gomock.Any()).Return(nil)
	s.mockBackfiller.EXPECT().BackfillReferredUser(gomock.Any(), s.mockTX, referrer, identity.ID).
		Return(domain.ErrRecordNotFound)
	s.mockNotifier.EXPECT().NotifyWelcome(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("queue is full"))
	s.mockAlerts.EXPECT().RaiseOutcome(gomock.Any(), gomock.Any(), gomock.Any())

	res, err := s.userService.Register(s.T().Context(), args)
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(200).Equal(res.Profile.Balance))
	s.ElementsMatch(
		[]string{string(domain.SideEffectReferralBackfill), string(domain.SideEffectWelcomeEmail)},
		res.Outcome.FailedEffects(),
	)
}

func (s *UserServiceTestSuite) TestRegisterPreconditions() {
	args := s.registerArgs()

	cases := []struct {
		name      string
		sub       *domain.PaymentSubmission
		subErr    error
		conflicts *repoargs.ProfileConflicts
		wantErr   error
	}{
		{name: "no submission", subErr: domain.ErrRecordNotFound, wantErr: domain.ErrNoApprovedSubmission},
		{
			name:    "pending submission",
			sub:     &domain.PaymentSubmission{Status: domain.SubmissionStatusPending},
			wantErr: domain.ErrNoApprovedSubmission,
		},
		{
			name: "submission already linked",
			sub: &domain.PaymentSubmission{
				Status: domain.SubmissionStatusApproved,
				UserID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
			},
			wantErr: domain.ErrSubmissionAlreadyUsed,
		},
		{
			// после удаления аккаунта user_id обнуляется, но email остается.
			name: "submission of deleted account",
			sub: &domain.PaymentSubmission{
				Status:    domain.SubmissionStatusApproved,
				UserEmail: "gone@envo.test",
			},
			wantErr: domain.ErrSubmissionAlreadyUsed,
		},
		{
			name:      "duplicate username",
			sub:       approvedSubmission(uuid.NullUUID{}),
			conflicts: &repoargs.ProfileConflicts{UsernameTaken: true, EmailTaken: true},
			wantErr:   domain.ErrDuplicateUsername,
		},
		{
			name:      "duplicate email",
			sub:       approvedSubmission(uuid.NullUUID{}),
			conflicts: &repoargs.ProfileConflicts{EmailTaken: true},
			wantErr:   domain.ErrDuplicateEmail,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockSubmissionRepo.EXPECT().FindLatestByAccountNumber(gomock.Any(), args.Phone).
				Return(t.sub, t.subErr)
			if t.conflicts != nil {
				s.mockProfileRepo.EXPECT().Conflicts(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(t.conflicts, nil)
			}

			// ни SignUp, ни транзакция не ожидаются: любые записи провалят тест.
			res, err := s.userService.Register(s.T().Context(), args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(res)
		})
	}
}

func (s *UserServiceTestSuite) TestRegisterValidation() {
	cases := []struct {
		name  string
		patch func(a *RegisterUserArgs)
	}{
		{name: "short username", patch: func(a *RegisterUserArgs) { a.Username = "ab" }},
		{name: "long username", patch: func(a *RegisterUserArgs) { a.Username = "abcdefghijklmnopqrstu" }},
		{name: "bad email", patch: func(a *RegisterUserArgs) { a.Email = "not-an-email" }},
		{name: "short password", patch: func(a *RegisterUserArgs) { a.Password = "1234567" }},
		{name: "short phone", patch: func(a *RegisterUserArgs) { a.Phone = "0300123" }},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := s.registerArgs()
			t.patch(&args)
			_, err := s.userService.Register(s.T().Context(), args)
			var valErr *domain.ValidationError
			s.Require().ErrorAs(err, &valErr)
		})
	}
}

func (s *UserServiceTestSuite) TestRegisterAdminEmailReserved() {
	args := s.registerArgs()
	args.Email = " ADMIN@envo.test "

	// до репозиториев и провайдера учетных записей дело не доходит.
	res, err := s.userService.Register(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrDuplicateEmail)
	s.Nil(res)
}

func (s *UserServiceTestSuite) TestRegisterCompensatesIdentity() {
	args := s.registerArgs()
	identity := &domain.Identity{ID: uuid.New(), Email: args.Email}

	s.mockSubmissionRepo.EXPECT().FindLatestByAccountNumber(gomock.Any(), gomock.Any()).
		Return(approvedSubmission(uuid.NullUUID{}), nil)
	s.mockProfileRepo.EXPECT().Conflicts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&repoargs.ProfileConflicts{}, nil)
	s.mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
	s.expectTx()
	s.mockProfileRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

	s.Run("identity deleted", func() {
		s.mockIdentity.EXPECT().Delete(gomock.Any(), identity.ID).Return(nil)

		_, err := s.userService.Register(s.T().Context(), args)
		s.Require().ErrorIs(err, domain.ErrDuplicateKey)
	})

	s.Run("cleanup failure raises alert", func() {
		s.mockSubmissionRepo.EXPECT().FindLatestByAccountNumber(gomock.Any(), gomock.Any()).
			Return(approvedSubmission(uuid.NullUUID{}), nil)
		s.mockProfileRepo.EXPECT().Conflicts(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&repoargs.ProfileConflicts{}, nil)
		s.mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
		s.expectTx()
		s.mockSubmissionRepo.EXPECT().LinkUser(gomock.Any(), gomock.Any()).Return(domain.ErrRecordNotFound)
		s.mockProfileRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createdProfile)
		s.mockIdentity.EXPECT().Delete(gomock.Any(), identity.ID).Return(errors.New("connection reset"))
		s.mockAlerts.EXPECT().Raise(gomock.Any(), string(domain.SideEffectIdentityCleanup), gomock.Any(), gomock.Any())

		_, err := s.userService.Register(s.T().Context(), args)
		s.Require().ErrorIs(err, domain.ErrSubmissionAlreadyUsed)
	})
}

func (s *UserServiceTestSuite) TestLogin() {
	investor := &domain.Identity{ID: uuid.New(), Email: "investor@envo.test"}
	admin := &domain.Identity{ID: uuid.New(), Email: "Admin@envo.test"}
	// учетная запись с адресом администратора, но с профилем инвестора.
	squatter := &domain.Identity{ID: uuid.New(), Email: "admin@envo.test"}

	s.mockIdentity.EXPECT().SignIn(gomock.Any(), investor.Email, "ok").Return(investor, nil)
	s.mockIdentity.EXPECT().SignIn(gomock.Any(), admin.Email, "ok").Return(admin, nil)
	s.mockIdentity.EXPECT().SignIn(gomock.Any(), investor.Email, "wrong").Return(nil, domain.ErrPasswordMissMatch)

	s.mockProfileRepo.EXPECT().FindByID(gomock.Any(), investor.ID).
		Return(&domain.Profile{ID: investor.ID, Invested: true}, nil)
	s.mockProfileRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(nil, domain.ErrRecordNotFound)
	s.mockIdentity.EXPECT().SignIn(gomock.Any(), squatter.Email, "squat").Return(squatter, nil)
	s.mockProfileRepo.EXPECT().FindByID(gomock.Any(), squatter.ID).
		Return(&domain.Profile{ID: squatter.ID, Invested: true}, nil)

	cases := []struct {
		name         string
		args         LoginUserArgs
		wantErr      error
		wantAdmin    bool
		wantInvested bool
	}{
		{name: "investor", args: LoginUserArgs{Email: investor.Email, Password: "ok"}, wantInvested: true},
		{name: "admin without profile", args: LoginUserArgs{Email: admin.Email, Password: "ok"}, wantAdmin: true},
		{
			name:         "admin email with investor profile",
			args:         LoginUserArgs{Email: squatter.Email, Password: "squat"},
			wantInvested: true,
		},
		{
			name:    "wrong password",
			args:    LoginUserArgs{Email: investor.Email, Password: "wrong"},
			wantErr: domain.ErrPasswordMissMatch,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr != nil {
				return
			}
			s.Equal(t.wantAdmin, res.Admin)
			s.Equal(t.wantInvested, res.Invested)

			claims, tokenErr := tokens.ValidateUserJWT(res.Token, s.jwtSecret)
			s.Require().NoError(tokenErr)
			s.Equal(res.UserID, claims.UserID)
			s.Equal(t.wantAdmin, claims.Admin)
		})
	}
}

func (s *UserServiceTestSuite) TestDashboard() {
	userID := uuid.New()
	earnings := []domain.Earning{
		{ID: 1, UserID: userID, Amount: decimal.NewFromInt(200), EarnedOn: time.Now()},
	}

	s.mockProfileRepo.EXPECT().FindByID(gomock.Any(), userID).
		Return(&domain.Profile{ID: userID, PlanID: "3", Balance: decimal.NewFromInt(1200)}, nil)
	s.mockEarningRepo.EXPECT().GetByUserID(gomock.Any(), userID, dashboardEarningsLimit).Return(earnings, nil)
	s.mockEarningRepo.EXPECT().SumByUserID(gomock.Any(), userID).Return(decimal.NewFromInt(400), nil)
	s.mockReferralRepo.EXPECT().SumBonusByStatus(gomock.Any(), userID, domain.ReferralStatusInvested).
		Return(decimal.NewFromInt(800), nil)

	d, err := s.userService.Dashboard(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal("Pro Investor", d.PlanName)
	s.True(decimal.NewFromInt(400).Equal(d.TotalEarned))
	s.True(decimal.NewFromInt(800).Equal(d.ReferralBonus))
	s.Len(d.Earnings, 1)
}
