package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const defaultAlertsLimit uint = 100

// AlertService канал оповещения оператора о сбоях побочных эффектов. Алерт пишется в лог, в метрики и в
// таблицу operator_alerts.
type AlertService struct {
	alertRepo AlertRepository
	metrics   Metrics
	l         *logrus.Entry
}

func NewAlertService(u uow.UOW, metrics Metrics, l *logrus.Logger) (*AlertService, error) {
	alertRepo, err := uow.GetRepositoryAs[AlertRepository](u, uow.RepositoryName(repoargs.AlertRepoName))
	if err != nil {
		return nil, err
	}
	return &AlertService{
		alertRepo: alertRepo,
		metrics:   metrics,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "alerts",
		}),
	}, nil
}

// Raise регистрирует алерт. Сам метод ошибок не возвращает: если алерт не удалось сохранить, это пишется в лог.
func (a *AlertService) Raise(ctx context.Context, source, subject string, err error) {
	msg := "unknown"
	if err != nil {
		msg = err.Error()
	}
	l := a.l.WithFields(logrus.Fields{
		"source":  source,
		"subject": subject,
	})
	l.WithError(err).Warn("operator alert raised")
	a.metrics.AlertRaised(source)

	// алерт сохраняется даже если контекст запроса уже отменен.
	_, createErr := a.alertRepo.Create(context.WithoutCancel(ctx), repoargs.CreateAlert{
		Source:  source,
		Subject: subject,
		Message: msg,
	})
	if createErr != nil {
		l.WithError(createErr).Error("persisting operator alert")
	}
}

// RaiseOutcome поднимает по алерту на каждый невыполненный побочный эффект.
func (a *AlertService) RaiseOutcome(ctx context.Context, subject string, outcome *domain.Outcome) {
	if !outcome.Degraded() {
		return
	}
	for _, f := range outcome.Failures {
		a.Raise(ctx, string(f.Effect), subject, f.Err)
	}
}

func (a *AlertService) List(ctx context.Context, onlyOpen bool) ([]domain.OperatorAlert, error) {
	alerts, err := a.alertRepo.List(ctx, onlyOpen, defaultAlertsLimit)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	return alerts, nil
}

func (a *AlertService) Resolve(ctx context.Context, id int64) (*domain.OperatorAlert, error) {
	alert, err := a.alertRepo.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolving alert %d: %w", id, err)
	}
	return alert, nil
}
