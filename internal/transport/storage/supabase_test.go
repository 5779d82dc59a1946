package storage

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SupabaseTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *Supabase
}

func TestSupabaseSuite(t *testing.T) {
	suite.Run(t, new(SupabaseTestSuite))
}

func (s *SupabaseTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	var err error
	s.client, err = NewSupabase(s.server.URL+"/", "service-key", "payment-screenshots")
	s.Require().NoError(err)
}

func (s *SupabaseTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *SupabaseTestSuite) TestUpload() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/storage/v1/object/payment-screenshots/03001234567/1700000000000_receipt.png", r.URL.Path)
		s.Equal("service-key", r.Header.Get("apikey"))
		s.Equal("Bearer service-key", r.Header.Get("Authorization"))
		s.Equal("image/png", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		s.Equal("png-bytes", string(body))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"payment-screenshots/03001234567/1700000000000_receipt.png"}`))
	}

	publicURL, err := s.client.Upload(s.T().Context(), "03001234567/1700000000000_receipt.png",
		[]byte("png-bytes"), "image/png")
	s.Require().NoError(err)
	s.Equal(
		s.server.URL+"/storage/v1/object/public/payment-screenshots/03001234567/1700000000000_receipt.png",
		publicURL,
	)
}

func (s *SupabaseTestSuite) TestUploadError() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`))
	}

	_, err := s.client.Upload(s.T().Context(), "a/b.png", []byte("x"), "image/png")
	s.Require().Error(err)

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusConflict, statusErr.Code)
	s.Equal("The resource already exists", statusErr.Message)
	s.Contains(err.Error(), "upload a/b.png")
}

func (s *SupabaseTestSuite) TestDelete() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		s.Equal("/storage/v1/object/payment-screenshots", r.URL.Path)
		var body map[string][]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal([]string{"03001234567/1_receipt.png"}, body["prefixes"])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}
	s.NoError(s.client.Delete(s.T().Context(), "03001234567/1_receipt.png"))

	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	err := s.client.Delete(s.T().Context(), "03001234567/1_receipt.png")
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)
}

func (s *SupabaseTestSuite) TestEscapePath() {
	s.Equal("0300/1_my%20receipt.png", escapePath("0300/1_my receipt.png"))
}

func (s *SupabaseTestSuite) TestConfigRequired() {
	_, err := NewSupabase("", "key", "bucket")
	s.Error(err)
}
