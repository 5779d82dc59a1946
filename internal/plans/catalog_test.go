package plans

import (
	"testing"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = Default()
}

func (s *CatalogTestSuite) TestDefaultRules() {
	s.True(decimal.NewFromInt(200).Equal(s.catalog.Rules.InviteeBonus))
	s.True(decimal.NewFromInt(200).Equal(s.catalog.Rules.DailyEarning))
	s.True(decimal.NewFromInt(600).Equal(s.catalog.Rules.MinWithdrawal))
	s.Equal(int64(2), s.catalog.Rules.LockAfterApproved)
	s.Equal(int64(2), s.catalog.Rules.LockRequiredReferrals)
	s.Len(s.catalog.All(), 3)
}

func (s *CatalogTestSuite) TestReferralBonus() {
	cases := []struct {
		name   string
		planID string
		want   int64
	}{
		{name: "starter", planID: "1", want: 200},
		{name: "growth", planID: "2", want: 200},
		{name: "top tier", planID: "3", want: 800},
		{name: "unknown falls back to minimal", planID: "42", want: 200},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.True(decimal.NewFromInt(t.want).Equal(s.catalog.ReferralBonus(t.planID)))
		})
	}
}

func (s *CatalogTestSuite) TestGet() {
	p, err := s.catalog.Get("1")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(6000).Equal(p.Amount))
	s.False(p.TopTier)

	_, err = s.catalog.Get("nope")
	s.ErrorIs(err, domain.ErrUnknownPlan)

	s.True(s.catalog.IsTopTier("3"))
	s.False(s.catalog.IsTopTier("2"))
	s.False(s.catalog.IsTopTier(""))
}

func (s *CatalogTestSuite) TestParseErrors() {
	_, err := Parse([]byte("plans: []"))
	s.Require().Error(err)

	_, err = Parse([]byte("plans:\n  - id: \"1\"\n  - id: \"1\"\n"))
	s.Require().Error(err)

	_, err = Parse([]byte("::not yaml"))
	s.Require().Error(err)
}
