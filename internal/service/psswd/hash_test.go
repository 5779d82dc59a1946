package psswd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type HashTestSuite struct {
	suite.Suite
}

func TestHashSuite(t *testing.T) {
	suite.Run(t, new(HashTestSuite))
}

func (s *HashTestSuite) TestHashAndCompare() {
	h := New(bcrypt.MinCost)
	hash, err := h.HashPassword("correct horse")
	s.Require().NoError(err)
	s.NotEqual("correct horse", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	s.Require().NoError(err)
	s.Equal(bcrypt.MinCost, cost)

	s.True(h.ComparePassword("correct horse", hash))
	s.False(h.ComparePassword("battery staple", hash))
	s.False(h.ComparePassword("correct horse", "not a hash"))
}

func (s *HashTestSuite) TestDefaultCost() {
	hash, err := Bcrypt{}.HashPassword("secret")
	s.Require().NoError(err)
	cost, err := bcrypt.Cost([]byte(hash))
	s.Require().NoError(err)
	s.Equal(bcrypt.DefaultCost, cost)
}

func (s *HashTestSuite) TestTooLong() {
	_, err := New(bcrypt.MinCost).HashPassword(strings.Repeat("a", 73))
	s.Require().ErrorIs(err, ErrPasswordTooLong)
}
