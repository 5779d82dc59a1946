package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

type WithdrawalService struct {
	uow            uow.UOW
	profileRepo    ProfileRepository
	withdrawalRepo WithdrawalRepository
	referralRepo   ReferralRepository
	metrics        Metrics
	catalog        *plans.Catalog
}

func NewWithdrawalService(u uow.UOW, metrics Metrics, catalog *plans.Catalog) (*WithdrawalService, error) {
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	withdrawalRepo, err := uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if err != nil {
		return nil, err
	}
	referralRepo, err := uow.GetRepositoryAs[ReferralRepository](u, uow.RepositoryName(repoargs.ReferralRepoName))
	if err != nil {
		return nil, err
	}
	return &WithdrawalService{
		uow:            u,
		profileRepo:    profileRepo,
		withdrawalRepo: withdrawalRepo,
		referralRepo:   referralRepo,
		metrics:        metrics,
		catalog:        catalog,
	}, nil
}

// SaveMethod сохраняет реквизиты для выплат пользователя.
func (w *WithdrawalService) SaveMethod(ctx context.Context, userID uuid.UUID, method domain.WithdrawalMethod) error {
	method.Method = strings.ToLower(strings.TrimSpace(method.Method))
	method.AccountName = strings.TrimSpace(method.AccountName)
	method.AccountNumber = strings.TrimSpace(method.AccountNumber)

	if !domain.IsPayoutMethod(method.Method) {
		return domain.NewValidationError("method", "unsupported withdrawal method")
	}
	if len([]rune(method.AccountName)) < 2 {
		return domain.NewValidationError("account name", "must be at least 2 characters")
	}
	if len(method.AccountNumber) < 11 {
		return domain.NewValidationError("account number", "must be at least 11 characters")
	}
	if err := w.profileRepo.UpdateWithdrawalMethod(ctx, userID, method); err != nil {
		return fmt.Errorf("saving withdrawal method: %w", err)
	}
	return nil
}

// Request создает заявку на вывод в статусе processing. Баланс списывается только при одобрении.
//
// Проверки выполняются в порядке:
//  1. минимальная сумма (ошибка валидации);
//  2. реферальная блокировка: тариф не верхний, одобренных выводов не меньше порога, рефералов Invested меньше
//     требуемого, domain.ErrReferralLock;
//  3. сумма не больше баланса, domain.ErrNotEnoughBalance;
//  4. реквизиты сохранены, domain.ErrPayoutMethodMissing.
func (w *WithdrawalService) Request(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
) (*domain.Withdrawal, error) {
	rules := w.catalog.Rules
	if amount.LessThan(rules.MinWithdrawal) {
		return nil, domain.NewValidationError("amount", "minimum withdrawal is "+rules.MinWithdrawal.String())
	}

	var (
		profile          *domain.Profile
		approvedCount    int64
		referralsInvited int64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := w.profileRepo.FindByID(gCtx, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		c, err := w.withdrawalRepo.CountByStatus(gCtx, userID, domain.WithdrawalStatusApproved)
		if err != nil {
			return err //nolint:wrapcheck
		}
		approvedCount = c
		return nil
	})
	g.Go(func() error {
		c, err := w.referralRepo.CountByStatus(gCtx, userID, domain.ReferralStatusInvested)
		if err != nil {
			return err //nolint:wrapcheck
		}
		referralsInvited = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", err)
	}

	if !w.catalog.IsTopTier(profile.PlanID) &&
		approvedCount >= rules.LockAfterApproved &&
		referralsInvited < rules.LockRequiredReferrals {
		return nil, domain.ErrReferralLock
	}
	if amount.GreaterThan(profile.Balance) {
		return nil, domain.ErrNotEnoughBalance
	}
	if profile.WithdrawalMethod == nil || profile.WithdrawalMethod.Method == "" {
		return nil, domain.ErrPayoutMethodMissing
	}

	withdrawal, err := w.withdrawalRepo.Create(ctx, repoargs.CreateWithdrawal{
		UserID:        userID,
		Amount:        amount,
		Method:        profile.WithdrawalMethod.Method,
		AccountName:   profile.WithdrawalMethod.AccountName,
		AccountNumber: profile.WithdrawalMethod.AccountNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", err)
	}
	w.metrics.WithdrawalRequested()
	return withdrawal, nil
}

func (w *WithdrawalService) History(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	ws, err := w.withdrawalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("withdrawal history: %w", err)
	}
	return ws, nil
}

// Decide переводит заявку из processing в конечный статус. При одобрении сумма списывается с баланса той же
// транзакцией; если баланса не хватает, заявка остается в processing и возвращается domain.ErrNotEnoughBalance.
func (w *WithdrawalService) Decide(
	ctx context.Context,
	id int64,
	decision domain.WithdrawalDecision,
) (*domain.Withdrawal, error) {
	if !decision.Valid() {
		return nil, domain.NewValidationError("decision", "must be approved or rejected")
	}
	var res *domain.Withdrawal
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, repoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		current, findErr := withdrawalRepo.FindByIDForUpdate(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.WithdrawalStatusProcessing {
			return domain.ErrInvalidTransition
		}
		if decision == domain.WithdrawalApprove {
			profileRepo, pRepoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
			if pRepoErr != nil {
				return pRepoErr //nolint:wrapcheck
			}
			if _, err := profileRepo.DebitBalance(c, current.UserID, current.Amount); err != nil {
				return err //nolint:wrapcheck
			}
		}
		var updErr error
		res, updErr = withdrawalRepo.UpdateStatus(c, id, decision.Status())
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("deciding withdrawal %d: %w", id, txErr)
	}
	return res, nil
}
