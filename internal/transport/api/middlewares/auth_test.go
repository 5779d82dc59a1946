package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/service/tokens"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	secret []byte
	router *gin.Engine
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.secret = []byte("jwt secret")

	s.router = gin.New()
	whoami := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.MustGet(CurrentUserIDKey).(uuid.UUID).String(),
			"admin": c.GetBool(CurrentUserAdminKey),
		})
	}
	s.router.GET("/me", AuthRequired(s.secret), whoami)
	s.router.GET("/admin", AuthRequired(s.secret), AdminRequired(), whoami)
	s.router.POST("/cron", SharedSecret("cron-secret"), func(c *gin.Context) { c.Status(http.StatusOK) })
	s.router.POST("/closed", SharedSecret(""), func(c *gin.Context) { c.Status(http.StatusOK) })
}

func (s *AuthMiddlewareTestSuite) send(method, path, authorization string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthMiddlewareTestSuite) token(admin bool, expire time.Duration, key []byte) string {
	t, err := tokens.GenerateUserJWT(uuid.New(), admin, expire, key)
	s.Require().NoError(err)
	return t
}

func (s *AuthMiddlewareTestSuite) TestAuthRequired() {
	userToken := s.token(false, time.Hour, s.secret)

	cases := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "valid", authorization: "Bearer " + userToken, wantStatus: http.StatusOK},
		{name: "lowercase scheme", authorization: "bearer " + userToken, wantStatus: http.StatusOK},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "no scheme", authorization: userToken, wantStatus: http.StatusUnauthorized},
		{
			name:          "foreign key",
			authorization: "Bearer " + s.token(false, time.Hour, []byte("other")),
			wantStatus:    http.StatusUnauthorized,
		}, {
			name:          "expired",
			authorization: "Bearer " + s.token(false, -time.Minute, s.secret),
			wantStatus:    http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.wantStatus, s.send(http.MethodGet, "/me", t.authorization).Code)
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestAdminRequired() {
	s.Equal(http.StatusForbidden, s.send(http.MethodGet, "/admin", "Bearer "+s.token(false, time.Hour, s.secret)).Code)

	rec := s.send(http.MethodGet, "/admin", "Bearer "+s.token(true, time.Hour, s.secret))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"admin":true`)
}

func (s *AuthMiddlewareTestSuite) TestSharedSecret() {
	s.Equal(http.StatusOK, s.send(http.MethodPost, "/cron", "Bearer cron-secret").Code)
	s.Equal(http.StatusUnauthorized, s.send(http.MethodPost, "/cron", "Bearer cron-secre").Code)
	s.Equal(http.StatusUnauthorized, s.send(http.MethodPost, "/cron", "").Code)
	// пустой секрет закрывает маршрут даже для пустого токена.
	s.Equal(http.StatusUnauthorized, s.send(http.MethodPost, "/closed", "Bearer ").Code)
}
