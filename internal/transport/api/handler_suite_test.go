package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/logger"
	"github.com/sajidali832/envo4/internal/service/tokens"
	"github.com/sajidali832/envo4/internal/transport/api/mocks"
	"github.com/sajidali832/envo4/internal/transport/api/testutils"
)

// handlerSuite общий роутер с моками всех сервисов. Встраивается в наборы тестов хендлеров.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine

	mockUserService       *mocks.MockUserServicer
	mockSubmissionService *mocks.MockSubmissionServicer
	mockReferralService   *mocks.MockReferralServicer
	mockWithdrawalService *mocks.MockWithdrawalServicer
	mockAccrualService    *mocks.MockAccrualServicer
	mockAdminService      *mocks.MockAdminServicer
	mockAlertService      *mocks.MockAlertServicer
	mockCatalog           *mocks.MockPlanCatalog

	jwtSecret  []byte
	cronSecret string

	userID     uuid.UUID
	userToken  string
	adminToken string
}

func (s *handlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *handlerSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockSubmissionService = mocks.NewMockSubmissionServicer(mockCtrl)
	s.mockReferralService = mocks.NewMockReferralServicer(mockCtrl)
	s.mockWithdrawalService = mocks.NewMockWithdrawalServicer(mockCtrl)
	s.mockAccrualService = mocks.NewMockAccrualServicer(mockCtrl)
	s.mockAdminService = mocks.NewMockAdminServicer(mockCtrl)
	s.mockAlertService = mocks.NewMockAlertServicer(mockCtrl)
	s.mockCatalog = mocks.NewMockPlanCatalog(mockCtrl)

	s.jwtSecret = []byte("super secret key")
	s.cronSecret = "cron secret"

	s.userID = uuid.New()
	var err error
	s.userToken, err = tokens.GenerateUserJWT(s.userID, false, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateUserJWT(uuid.New(), true, time.Hour, s.jwtSecret)
	s.Require().NoError(err)

	s.router, err = New(RouterArgs{
		Logger:            logger.New(io.Discard),
		UserService:       s.mockUserService,
		SubmissionService: s.mockSubmissionService,
		ReferralService:   s.mockReferralService,
		WithdrawalService: s.mockWithdrawalService,
		AccrualService:    s.mockAccrualService,
		AdminService:      s.mockAdminService,
		AlertService:      s.mockAlertService,
		Catalog:           s.mockCatalog,
		JWTSecretKey:      s.jwtSecret,
		CronSecret:        s.cronSecret,
	})
	s.Require().NoError(err)
}

// request выполняет запрос к роутеру. Пустой token означает анонимный запрос.
func (s *handlerSuite) request(
	method, url string,
	body io.Reader,
	token string,
	opts ...func(*testutils.RequestOptions),
) *http.Response {
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, opts...)
	s.Require().NoError(err)
	return res
}

func (s *handlerSuite) jsonRequest(method, url string, payload any, token string) *http.Response {
	data, err := json.Marshal(payload)
	s.Require().NoError(err)
	return s.request(method, url, bytes.NewReader(data), token,
		testutils.WithContentType("application/json"))
}

func (s *handlerSuite) decode(res *http.Response, dst any) {
	defer res.Body.Close()
	s.Require().NoError(json.NewDecoder(res.Body).Decode(dst))
}

func (s *handlerSuite) errorText(res *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	s.decode(res, &body)
	return body.Error
}
