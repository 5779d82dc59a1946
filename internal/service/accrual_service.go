package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const (
	accrualLockKey = "envo:daily-earnings"
	accrualLockTTL = 10 * time.Minute
)

const (
	AccrualMsgNoInvested  = "No invested users to process."
	AccrualMsgAllPaid     = "All invested users have already received their earnings for today."
	AccrualMsgSuccess     = "Successfully processed daily earnings."
	AccrualMsgWithFailure = "Processed daily earnings with failures."
)

// AccrualReport результат запуска ежедневного начисления.
type AccrualReport struct {
	Message      string `json:"message"`
	UsersPaid    int    `json:"users_paid"`
	UsersSkipped int    `json:"users_skipped"`
	UsersFailed  int    `json:"users_failed,omitempty"`
}

type AccrualService struct {
	uow         uow.UOW
	profileRepo ProfileRepository
	earningRepo EarningRepository
	locker      Locker
	alerts      AlertRaiser
	metrics     Metrics
	catalog     *plans.Catalog
	location    *time.Location
	now         func() time.Time
	l           *logrus.Entry
}

type AccrualServiceArgs struct {
	Locker   Locker
	Alerts   AlertRaiser
	Metrics  Metrics
	Catalog  *plans.Catalog
	Location *time.Location
	Logger   *logrus.Logger
}

func NewAccrualService(u uow.UOW, args AccrualServiceArgs) (*AccrualService, error) {
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	earningRepo, err := uow.GetRepositoryAs[EarningRepository](u, uow.RepositoryName(repoargs.EarningRepoName))
	if err != nil {
		return nil, err
	}
	loc := args.Location
	if loc == nil {
		loc = time.Local
	}
	return &AccrualService{
		uow:         u,
		profileRepo: profileRepo,
		earningRepo: earningRepo,
		locker:      args.Locker,
		alerts:      args.Alerts,
		metrics:     args.Metrics,
		catalog:     args.Catalog,
		location:    loc,
		now:         time.Now,
		l: args.Logger.WithFields(logrus.Fields{
			"component": "service",
			"module":    "accrual",
		}),
	}, nil
}

// RunDaily начисляет дневной доход всем инвесторам, которые еще не получили его сегодня.
//
// Алгоритм работы:
//  1. Берет блокировку, чтобы параллельные запуски не пересекались. Если блокировка занята, возвращает
//     domain.ErrAccrualInProgress.
//  2. Выбирает инвесторов и тех, кому уже начислено с локальной полуночи. Разница подлежит начислению.
//  3. Для каждого пользователя одной транзакцией добавляет запись earnings и увеличивает баланс.
//     Нарушение уникальности (user_id, earned_on) означает, что начисление уже сделано, и считается пропуском.
//     Ошибка по одному пользователю пишется в лог и алерты и не останавливает обработку остальных.
func (a *AccrualService) RunDaily(ctx context.Context) (*AccrualReport, error) {
	unlock, ok, lockErr := a.locker.TryLock(ctx, accrualLockKey, accrualLockTTL)
	if lockErr != nil {
		return nil, fmt.Errorf("daily accrual: %w", lockErr)
	}
	if !ok {
		return nil, domain.ErrAccrualInProgress
	}
	defer unlock()

	invested, investedErr := a.profileRepo.InvestedIDs(ctx)
	if investedErr != nil {
		return nil, fmt.Errorf("daily accrual: %w", investedErr)
	}
	if len(invested) == 0 {
		return &AccrualReport{Message: AccrualMsgNoInvested}, nil
	}

	now := a.now().In(a.location)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.location)

	paidToday, paidErr := a.earningRepo.UserIDsSince(ctx, midnight)
	if paidErr != nil {
		return nil, fmt.Errorf("daily accrual: %w", paidErr)
	}
	pending := difference(invested, paidToday)
	if len(pending) == 0 {
		return &AccrualReport{Message: AccrualMsgAllPaid, UsersSkipped: len(invested)}, nil
	}

	amount := a.catalog.Rules.DailyEarning
	var paid, failed int
	for _, userID := range pending {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("daily accrual: %w", ctx.Err())
		}
		err := a.payOne(ctx, userID, repoargs.CreateEarning{UserID: userID, Amount: amount, EarnedOn: midnight})
		switch {
		case err == nil:
			paid++
		case errors.Is(err, domain.ErrDuplicateKey):
			a.l.WithField("userID", userID).Debug("earning already paid today")
		default:
			failed++
			a.l.WithError(err).WithField("userID", userID).Error("paying daily earning")
			a.alerts.Raise(ctx, string(domain.SideEffectDailyEarning), "user "+userID.String(), err)
		}
	}
	a.metrics.EarningsPaid(paid)

	report := AccrualReport{
		Message:      AccrualMsgSuccess,
		UsersPaid:    paid,
		UsersSkipped: len(invested) - paid,
		UsersFailed:  failed,
	}
	if failed > 0 {
		report.Message = AccrualMsgWithFailure
	}
	a.l.WithFields(logrus.Fields{
		"paid":    report.UsersPaid,
		"skipped": report.UsersSkipped,
		"failed":  report.UsersFailed,
	}).Info("daily accrual finished")
	return &report, nil
}

func (a *AccrualService) payOne(ctx context.Context, userID uuid.UUID, earning repoargs.CreateEarning) error {
	return a.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		earningRepo, repoErr := uow.GetAs[EarningRepository](tx, uow.RepositoryName(repoargs.EarningRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		profileRepo, repoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if _, err := earningRepo.Create(c, earning); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := profileRepo.AddBalance(c, userID, earning.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})
}

// difference элементы all, которых нет в exclude. Порядок all сохраняется.
func difference(all, exclude []uuid.UUID) []uuid.UUID {
	skip := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	res := make([]uuid.UUID, 0, len(all))
	for _, id := range all {
		if _, ok := skip[id]; !ok {
			res = append(res, id)
		}
	}
	return res
}
