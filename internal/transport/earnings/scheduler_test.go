package earnings

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/service"
)

type runnerFunc func(ctx context.Context) (*service.AccrualReport, error)

func (f runnerFunc) RunDaily(ctx context.Context) (*service.AccrualReport, error) {
	return f(ctx)
}

type SchedulerTestSuite struct {
	suite.Suite
	logs   *bytes.Buffer
	logger *logrus.Logger
	loc    *time.Location
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.logs = new(bytes.Buffer)
	s.logger = logrus.New()
	s.logger.SetOutput(s.logs)
	s.loc = time.FixedZone("PKT", 5*60*60)
}

func (s *SchedulerTestSuite) TestInvalidSpec() {
	_, err := New(runnerFunc(nil), "every day please", s.loc, s.logger)
	s.Error(err)
}

func (s *SchedulerTestSuite) TestNextInLocation() {
	sch, err := New(runnerFunc(nil), "5 0 * * *", s.loc, s.logger)
	s.Require().NoError(err)

	next := sch.Next().In(s.loc)
	s.Equal(0, next.Hour())
	s.Equal(5, next.Minute())
}

func (s *SchedulerTestSuite) TestTick() {
	calls := 0
	sch, err := New(runnerFunc(func(ctx context.Context) (*service.AccrualReport, error) {
		calls++
		_, hasDeadline := ctx.Deadline()
		s.True(hasDeadline)
		return &service.AccrualReport{Message: service.AccrualMsgSuccess, UsersPaid: 2}, nil
	}), "@daily", s.loc, s.logger)
	s.Require().NoError(err)

	sch.tick()
	s.Equal(1, calls)
	s.Contains(s.logs.String(), service.AccrualMsgSuccess)
}

func (s *SchedulerTestSuite) TestTickErrors() {
	results := []error{domain.ErrAccrualInProgress, errors.New("db down")}
	i := 0
	sch, err := New(runnerFunc(func(context.Context) (*service.AccrualReport, error) {
		e := results[i]
		i++
		return nil, e
	}), "@daily", s.loc, s.logger)
	s.Require().NoError(err)

	sch.tick()
	s.Contains(s.logs.String(), "accrual already running")
	sch.tick()
	s.Contains(s.logs.String(), "db down")
}

func (s *SchedulerTestSuite) TestRunStops() {
	sch, err := New(runnerFunc(nil), "@daily", s.loc, s.logger)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.T().Context())
	done := make(chan struct{})
	go func() {
		sch.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("scheduler did not stop")
	}
}
