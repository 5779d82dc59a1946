package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ResendTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	mailer  *Resend
}

func TestResendSuite(t *testing.T) {
	suite.Run(t, new(ResendTestSuite))
}

func (s *ResendTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	var err error
	s.mailer, err = New(Config{
		APIKey:       "re_test",
		From:         "ENVO-EARN <onboarding@resend.dev>",
		DashboardURL: "https://envo.example/dashboard",
		DailyEarning: decimal.NewFromInt(200),
		BaseURL:      s.server.URL,
	})
	s.Require().NoError(err)
	s.mailer.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
}

func (s *ResendTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ResendTestSuite) TestSendWelcome() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(routeEmails, r.URL.Path)
		s.Equal("Bearer re_test", r.Header.Get("Authorization"))

		var req sendRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal([]string{"ali@example.com"}, req.To)
		s.Equal(welcomeSubject, req.Subject)
		s.Contains(req.HTML, "<strong>ali_khan</strong>")
		s.Contains(req.HTML, "200 PKR")
		s.Contains(req.HTML, `href="https://envo.example/dashboard"`)
		s.Contains(req.HTML, "2026 ENVO EARN")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}

	res := s.mailer.SendWelcome(s.T().Context(), "ali@example.com", "ali_khan")
	s.True(res.Success)
	s.Equal("49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", res.ID)
	s.Empty(res.Error)
}

func (s *ResendTestSuite) TestUsernameEscaped() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.NotContains(req.HTML, "<script>")
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}
	res := s.mailer.SendWelcome(s.T().Context(), "ali@example.com", "<script>x</script>")
	s.True(res.Success)
}

func (s *ResendTestSuite) TestFailuresFoldedIntoResult() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`))
	}
	res := s.mailer.SendWelcome(s.T().Context(), "bad", "ali_khan")
	s.False(res.Success)
	s.Contains(res.Error, "Invalid to field")

	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}
	res = s.mailer.SendWelcome(s.T().Context(), "ali@example.com", "ali_khan")
	s.False(res.Success)
	s.Contains(res.Error, "status 502")

	s.server.Close()
	res = s.mailer.SendWelcome(s.T().Context(), "ali@example.com", "ali_khan")
	s.False(res.Success)
	s.NotEmpty(res.Error)
}
