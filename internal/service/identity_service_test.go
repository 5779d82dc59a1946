package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/internal/service/mocks"
	"github.com/sajidali832/envo4/pkg/uow"
	uowmocks "github.com/sajidali832/envo4/pkg/uow/mocks"
)

type IdentityServiceTestSuite struct {
	suite.Suite
	mockIdentityRepo *mocks.MockIdentityRepository
	mockPsswd        *mocks.MockPasswordHasher
	identityService  *IdentityService
}

func TestIdentityServiceSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}

func (s *IdentityServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(mockCtrl)
	s.mockIdentityRepo = mocks.NewMockIdentityRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.IdentityRepoName)).
		Return(s.mockIdentityRepo, nil).AnyTimes()

	svc, err := NewIdentityService(mockUOW, s.mockPsswd)
	s.Require().NoError(err)
	s.identityService = svc
}

func (s *IdentityServiceTestSuite) TestSignUp() {
	s.mockPsswd.EXPECT().HashPassword("password1").Return("hash", nil).Times(2)
	s.mockIdentityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateIdentity) (*domain.Identity, error) {
			s.NotEqual(uuid.Nil, args.ID)
			s.Equal("hash", args.EncryptedPassword)
			return &domain.Identity{ID: args.ID, Email: args.Email}, nil
		})
	s.mockIdentityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

	identity, err := s.identityService.SignUp(s.T().Context(), " ali@envo.test ", "password1")
	s.Require().NoError(err)
	s.Equal("ali@envo.test", identity.Email)

	_, err = s.identityService.SignUp(s.T().Context(), "ali@envo.test", "password1")
	s.Require().ErrorIs(err, domain.ErrDuplicateEmail)
}

func (s *IdentityServiceTestSuite) TestSignIn() {
	stored := &domain.Identity{ID: uuid.New(), Email: "ali@envo.test", EncryptedPassword: "hash"}
	s.mockIdentityRepo.EXPECT().FindByEmail(gomock.Any(), "ali@envo.test").Return(stored, nil).Times(2)
	s.mockIdentityRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@envo.test").Return(nil, domain.ErrRecordNotFound)
	s.mockPsswd.EXPECT().ComparePassword("ok", "hash").Return(true)
	s.mockPsswd.EXPECT().ComparePassword("bad", "hash").Return(false)

	identity, err := s.identityService.SignIn(s.T().Context(), "ali@envo.test", "ok")
	s.Require().NoError(err)
	s.Equal(stored.ID, identity.ID)

	_, err = s.identityService.SignIn(s.T().Context(), "ali@envo.test", "bad")
	s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)

	_, err = s.identityService.SignIn(s.T().Context(), "nobody@envo.test", "ok")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *IdentityServiceTestSuite) TestEnsureAdmin() {
	s.mockIdentityRepo.EXPECT().FindByEmail(gomock.Any(), "admin@envo.test").
		Return(&domain.Identity{ID: uuid.New()}, nil)
	created, err := s.identityService.EnsureAdmin(s.T().Context(), "admin@envo.test", "secret123")
	s.Require().NoError(err)
	s.False(created)

	s.mockIdentityRepo.EXPECT().FindByEmail(gomock.Any(), "admin@envo.test").Return(nil, domain.ErrRecordNotFound)
	s.mockPsswd.EXPECT().HashPassword("secret123").Return("hash", nil)
	s.mockIdentityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: uuid.New()}, nil)
	created, err = s.identityService.EnsureAdmin(s.T().Context(), "admin@envo.test", "secret123")
	s.Require().NoError(err)
	s.True(created)
}
