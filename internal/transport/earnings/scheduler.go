// Package earnings запускает ежедневное начисление по расписанию cron внутри процесса.
package earnings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/service"
)

const defaultRunTimeout = 5 * time.Minute

type Runner interface {
	RunDaily(ctx context.Context) (*service.AccrualReport, error)
}

type Scheduler struct {
	runner     Runner
	cron       *cron.Cron
	l          *logrus.Entry
	location   *time.Location
	runTimeout time.Duration
}

// New spec стандартное выражение cron из 5 полей или дескриптор вида @daily, вычисляется в зоне loc.
func New(runner Runner, spec string, loc *time.Location, l *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		runner: runner,
		cron:   cron.New(cron.WithLocation(loc)),
		l: l.WithFields(logrus.Fields{
			"component": "earnings",
			"module":    "scheduler",
		}),
		location:   loc,
		runTimeout: defaultRunTimeout,
	}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("schedule %q: %s", spec, err.Error())
	}
	return s, nil
}

// Run работает до отмены ctx и дожидается завершения запущенного начисления.
func (s *Scheduler) Run(ctx context.Context) {
	s.l.WithField("next", s.Next()).Info("Starting")
	s.cron.Start()

	<-ctx.Done()
	s.l.Info("Got stop signal, exiting...")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now().In(s.location))
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	report, err := s.runner.RunDaily(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAccrualInProgress) {
			s.l.Info("accrual already running, skipped")
			return
		}
		s.l.WithError(err).Error("daily accrual")
		return
	}
	s.l.WithFields(logrus.Fields{
		"paid":    report.UsersPaid,
		"skipped": report.UsersSkipped,
		"failed":  report.UsersFailed,
	}).Info(report.Message)
}
