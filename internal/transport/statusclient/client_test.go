package statusclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestGetStatus() {
	type tcase struct {
		name       string
		phone      string
		httpStatus int
		body       string
		retryAfter string
		wantState  State
		wantErr    error
	}
	cases := []tcase{
		{
			name:       "approved",
			phone:      "03001234567",
			httpStatus: http.StatusOK,
			body:       `{"id":3,"status":"approved","createdAt":"2026-03-14T10:00:00Z"}`,
			wantState:  StateApproved,
		}, {
			name:       "not found",
			phone:      "03001234568",
			httpStatus: http.StatusNotFound,
			body:       `{"error":"record not found"}`,
			wantErr:    ErrNotFound,
		}, {
			name:       "too many requests",
			phone:      "03001234569",
			httpStatus: http.StatusTooManyRequests,
			retryAfter: "7",
			wantErr:    new(TooManyRequestError),
		}, {
			name:       "internal error",
			phone:      "03001234560",
			httpStatus: http.StatusInternalServerError,
			wantErr:    new(StatusCodeError),
		},
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteSubmissionStatus, r.URL.Path)
		phone := r.URL.Query().Get("phone")
		for _, c := range cases {
			if c.phone != phone {
				continue
			}
			if c.retryAfter != "" {
				w.Header().Set("Retry-After", c.retryAfter)
			}
			w.WriteHeader(c.httpStatus)
			_, _ = w.Write([]byte(c.body))
			return
		}
		s.Failf("unexpected phone", "phone %s", phone)
	}))
	client := New(s.server.URL + "/")

	for _, t := range cases {
		s.Run(t.name, func() {
			status, err := client.GetStatus(s.T().Context(), t.phone)
			switch want := t.wantErr.(type) {
			case nil:
				s.Require().NoError(err)
				s.Equal(t.wantState, status.Status)
				s.True(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC).Equal(status.CreatedAt))
			case *TooManyRequestError:
				s.Require().ErrorAs(err, &want)
				s.Equal(7*time.Second, want.RetryAfter)
			case *StatusCodeError:
				s.Require().ErrorAs(err, &want)
				s.Equal(t.httpStatus, want.Code)
			default:
				s.Require().ErrorIs(err, t.wantErr)
			}
		})
	}
}

func (s *ClientTestSuite) TestParseRetryAfter() {
	s.Equal(3*time.Second, parseRetryAfter("3"))
	s.Equal(defaultRetryAfter, parseRetryAfter(""))
	s.Equal(defaultRetryAfter, parseRetryAfter("0"))
	s.Equal(defaultRetryAfter, parseRetryAfter("1000"))
}
