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

// PendingRegistrationName отображаемое имя реферала, который еще не зарегистрировался.
const PendingRegistrationName = "Pending Registration"

type ReferralService struct {
	uow          uow.UOW
	referralRepo ReferralRepository
	profileRepo  ProfileRepository
	catalog      *plans.Catalog
	dashboardURL string
}

func NewReferralService(u uow.UOW, catalog *plans.Catalog, dashboardURL string) (*ReferralService, error) {
	referralRepo, err := uow.GetRepositoryAs[ReferralRepository](u, uow.RepositoryName(repoargs.ReferralRepoName))
	if err != nil {
		return nil, err
	}
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	return &ReferralService{
		uow:          u,
		referralRepo: referralRepo,
		profileRepo:  profileRepo,
		catalog:      catalog,
		dashboardURL: strings.TrimRight(dashboardURL, "/"),
	}, nil
}

// CreditReferrer атомарно увеличивает баланс реферера в транзакции tx.
func (r *ReferralService) CreditReferrer(
	ctx context.Context,
	tx uow.TX,
	referrerID uuid.UUID,
	amount decimal.Decimal,
) error {
	repo, repoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if _, err := repo.AddBalance(ctx, referrerID, amount); err != nil {
		return fmt.Errorf("crediting referrer: %w", err)
	}
	return nil
}

// RecordReferral добавляет запись реферала. Статус всегда Invested.
func (r *ReferralService) RecordReferral(
	ctx context.Context,
	tx uow.TX,
	referrerID uuid.UUID,
	referredUserID uuid.NullUUID,
	bonus decimal.Decimal,
) (*domain.Referral, error) {
	repo, repoErr := uow.GetAs[ReferralRepository](tx, uow.RepositoryName(repoargs.ReferralRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	ref, err := repo.Create(ctx, repoargs.CreateReferral{
		ReferrerID:     referrerID,
		ReferredUserID: referredUserID,
		Status:         domain.ReferralStatusInvested,
		BonusAmount:    bonus,
	})
	if err != nil {
		return nil, fmt.Errorf("recording referral: %w", err)
	}
	return ref, nil
}

// AwardApprovalBonus начисляет бонус рефереру за одобренную оплату приглашенного и записывает реферала.
// Оба действия выполняются одной транзакцией.
func (r *ReferralService) AwardApprovalBonus(
	ctx context.Context,
	referrerID uuid.UUID,
	inviteePlanID string,
) (*domain.Referral, error) {
	bonus := r.catalog.ReferralBonus(inviteePlanID)
	var ref *domain.Referral
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := r.CreditReferrer(c, tx, referrerID, bonus); err != nil {
			return err
		}
		var recErr error
		ref, recErr = r.RecordReferral(c, tx, referrerID, uuid.NullUUID{}, bonus)
		return recErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("awarding approval bonus: %w", txErr)
	}
	return ref, nil
}

// BackfillReferredUser связывает самую свежую незаполненную запись реферера с зарегистрированным userID.
// Если такой записи нет, возвращает domain.ErrRecordNotFound.
func (r *ReferralService) BackfillReferredUser(ctx context.Context, tx uow.TX, referrerID, userID uuid.UUID) error {
	repo, repoErr := uow.GetAs[ReferralRepository](tx, uow.RepositoryName(repoargs.ReferralRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if _, err := repo.BackfillLatestUnresolved(ctx, referrerID, userID); err != nil {
		return fmt.Errorf("backfilling referral: %w", err)
	}
	return nil
}

type ReferralSummary struct {
	Link          string
	Referrals     []domain.Referral
	Usernames     map[uuid.UUID]string
	TotalBonus    decimal.Decimal
	InvestedCount int64
}

// ReferredUsername имя приглашенного для записи ref или PendingRegistrationName.
func (s *ReferralSummary) ReferredUsername(ref domain.Referral) string {
	if !ref.ReferredUserID.Valid {
		return PendingRegistrationName
	}
	if name, ok := s.Usernames[ref.ReferredUserID.UUID]; ok {
		return name
	}
	return PendingRegistrationName
}

// Summary собирает реферальную сводку пользователя.
func (r *ReferralService) Summary(ctx context.Context, userID uuid.UUID) (*ReferralSummary, error) {
	summary := ReferralSummary{Link: r.Link(userID)}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refs, err := r.referralRepo.GetByReferrerID(gCtx, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		summary.Referrals = refs
		return nil
	})
	g.Go(func() error {
		total, err := r.referralRepo.SumBonusByStatus(gCtx, userID, domain.ReferralStatusInvested)
		if err != nil {
			return err //nolint:wrapcheck
		}
		summary.TotalBonus = total
		return nil
	})
	g.Go(func() error {
		count, err := r.referralRepo.CountByStatus(gCtx, userID, domain.ReferralStatusInvested)
		if err != nil {
			return err //nolint:wrapcheck
		}
		summary.InvestedCount = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("referral summary: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(summary.Referrals))
	for _, ref := range summary.Referrals {
		if ref.ReferredUserID.Valid {
			ids = append(ids, ref.ReferredUserID.UUID)
		}
	}
	usernames, err := r.profileRepo.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("referral summary: %w", err)
	}
	summary.Usernames = usernames
	return &summary, nil
}

// Link реферальная ссылка пользователя.
func (r *ReferralService) Link(userID uuid.UUID) string {
	return fmt.Sprintf("%s/invest?ref=%s", r.dashboardURL, userID)
}
