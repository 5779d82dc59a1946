package domain

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlatformsTestSuite struct {
	suite.Suite
}

func TestPlatformsSuite(t *testing.T) {
	suite.Run(t, new(PlatformsTestSuite))
}

func (s *PlatformsTestSuite) TestIsMobileNumber() {
	cases := []struct {
		phone string
		want  bool
	}{
		{phone: "03001234567", want: true},
		{phone: "03130306344", want: true},
		{phone: "0300123456", want: false},
		{phone: "030012345678", want: false},
		{phone: "04001234567", want: false},
		{phone: "+923001234567", want: false},
		{phone: "0300-123456", want: false},
		{phone: "", want: false},
	}
	for _, t := range cases {
		s.Equalf(t.want, IsMobileNumber(t.phone), "phone %q", t.phone)
	}
}

func (s *PlatformsTestSuite) TestPlatforms() {
	s.True(IsPaymentPlatform("bank"))
	s.False(IsPaymentPlatform("paypal"))
	s.True(IsPayoutMethod("jazzcash"))
	s.False(IsPayoutMethod("bank"))
}

func (s *PlatformsTestSuite) TestDecisions() {
	s.True(SubmissionApprove.Valid())
	s.False(SubmissionDecision("pending").Valid())
	s.Equal(SubmissionStatusRejected, SubmissionReject.Status())
	s.True(SubmissionStatusApproved.IsFinal())
	s.False(SubmissionStatusPending.IsFinal())

	s.True(WithdrawalReject.Valid())
	s.False(WithdrawalDecision("processing").Valid())
	s.Equal(WithdrawalStatusApproved, WithdrawalApprove.Status())
}

func (s *PlatformsTestSuite) TestOutcome() {
	var nilOutcome *Outcome
	s.False(nilOutcome.Degraded())
	s.Require().NoError(nilOutcome.Err())

	o := new(Outcome)
	s.False(o.Degraded())
	o.Fail(SideEffectProofDeletion, ErrUnknown)
	s.True(o.Degraded())
	s.Equal([]string{"proof_deletion"}, o.FailedEffects())
	s.Require().ErrorIs(o.Err(), ErrUnknown)
}
