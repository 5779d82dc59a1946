package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const (
	defaultPendingLimit uint = 200
	maxProofSize             = 10 << 20
)

var unsafeFileNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type SubmissionService struct {
	uow            uow.UOW
	submissionRepo SubmissionRepository
	profileRepo    ProfileRepository
	storage        ObjectStorage
	referrals      ReferralAwarder
	alerts         AlertRaiser
	metrics        Metrics
	catalog        *plans.Catalog
	now            func() time.Time
}

type SubmissionServiceArgs struct {
	Storage   ObjectStorage
	Referrals ReferralAwarder
	Alerts    AlertRaiser
	Metrics   Metrics
	Catalog   *plans.Catalog
}

func NewSubmissionService(u uow.UOW, args SubmissionServiceArgs) (*SubmissionService, error) {
	submissionRepo, err := uow.GetRepositoryAs[SubmissionRepository](u, uow.RepositoryName(repoargs.SubmissionRepoName))
	if err != nil {
		return nil, err
	}
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	return &SubmissionService{
		uow:            u,
		submissionRepo: submissionRepo,
		profileRepo:    profileRepo,
		storage:        args.Storage,
		referrals:      args.Referrals,
		alerts:         args.Alerts,
		metrics:        args.Metrics,
		catalog:        args.Catalog,
		now:            time.Now,
	}, nil
}

type ProofFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

type SubmitArgs struct {
	AccountName   string
	AccountNumber string
	Platform      string
	PlanID        string
	ReferrerID    uuid.NullUUID
	Proof         ProofFile
}

// Submit принимает заявку об оплате.
//
// Алгоритм работы:
//  1. Проверяет входные данные и разрешает тариф по каталогу. Ошибки валидации возвращаются до любых побочных
//     эффектов.
//  2. Загружает скриншот в хранилище по пути <телефон>/<unixMillis>_<имя файла>.
//  3. Сохраняет заявку в статусе pending. Если запись не удалась, загруженный файл удаляется.
func (s *SubmissionService) Submit(ctx context.Context, args SubmitArgs) (*domain.PaymentSubmission, error) {
	plan, valErr := s.validateSubmit(ctx, &args)
	if valErr != nil {
		return nil, valErr
	}

	path := proofPath(args.AccountNumber, args.Proof.FileName, s.now())
	url, uploadErr := s.storage.Upload(ctx, path, args.Proof.Data, args.Proof.ContentType)
	if uploadErr != nil {
		return nil, fmt.Errorf("uploading payment proof: %w", uploadErr)
	}

	sub, createErr := s.submissionRepo.Create(ctx, repoargs.CreateSubmission{
		AccountName:       args.AccountName,
		AccountNumber:     args.AccountNumber,
		Platform:          args.Platform,
		ScreenshotPath:    path,
		ScreenshotURL:     url,
		ReferrerID:        args.ReferrerID,
		PlanID:            plan.ID,
		InvestmentAmount:  plan.Amount,
		DailyReturnAmount: plan.DailyReturn,
	})
	if createErr != nil {
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), path); delErr != nil {
			s.alerts.Raise(ctx, string(domain.SideEffectProofDeletion), "orphaned proof "+path, delErr)
		}
		return nil, fmt.Errorf("saving payment submission: %w", createErr)
	}
	return sub, nil
}

func (s *SubmissionService) validateSubmit(ctx context.Context, args *SubmitArgs) (*plans.Plan, error) {
	args.AccountName = strings.TrimSpace(args.AccountName)
	args.AccountNumber = strings.TrimSpace(args.AccountNumber)
	args.Platform = strings.ToLower(strings.TrimSpace(args.Platform))

	if len([]rune(args.AccountName)) < 2 {
		return nil, domain.NewValidationError("account name", "must be at least 2 characters")
	}
	if !domain.IsMobileNumber(args.AccountNumber) {
		return nil, domain.NewValidationError("phone", "must be a valid mobile number, e.g. 03001234567")
	}
	if !domain.IsPaymentPlatform(args.Platform) {
		return nil, domain.NewValidationError("platform", "unsupported payment platform")
	}
	if len(args.Proof.Data) == 0 {
		return nil, domain.NewValidationError("screenshot", "is required")
	}
	if len(args.Proof.Data) > maxProofSize {
		return nil, domain.NewValidationError("screenshot", "file is too large")
	}
	if !strings.HasPrefix(args.Proof.ContentType, "image/") {
		return nil, domain.NewValidationError("screenshot", "must be an image")
	}
	plan, planErr := s.catalog.Get(args.PlanID)
	if planErr != nil {
		return nil, domain.NewValidationError("plan", "unknown investment plan")
	}
	if args.ReferrerID.Valid {
		if _, err := s.profileRepo.FindByID(ctx, args.ReferrerID.UUID); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return nil, domain.NewValidationError("referrer", "unknown referrer")
			}
			return nil, fmt.Errorf("checking referrer: %w", err)
		}
	}
	return &plan, nil
}

// proofPath путь файла в хранилище. Из имени файла удаляются все символы кроме латиницы, цифр и ._-
func proofPath(phone, fileName string, now time.Time) string {
	sanitized := unsafeFileNameRe.ReplaceAllString(fileName, "")
	if sanitized == "" {
		sanitized = "proof"
	}
	return fmt.Sprintf("%s/%d_%s", phone, now.UnixMilli(), sanitized)
}

// Status возвращает самую свежую заявку для номера телефона.
func (s *SubmissionService) Status(ctx context.Context, phone string) (*domain.PaymentSubmission, error) {
	phone = strings.TrimSpace(phone)
	if !domain.IsMobileNumber(phone) {
		return nil, domain.NewValidationError("phone", "must be a valid mobile number, e.g. 03001234567")
	}
	sub, err := s.submissionRepo.FindLatestByAccountNumber(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("submission status: %w", err)
	}
	return sub, nil
}

func (s *SubmissionService) ListPending(ctx context.Context) ([]domain.PaymentSubmission, error) {
	subs, err := s.submissionRepo.ListByStatus(ctx, domain.SubmissionStatusPending, defaultPendingLimit)
	if err != nil {
		return nil, fmt.Errorf("listing pending submissions: %w", err)
	}
	return subs, nil
}

// Decide переводит заявку из pending в конечный статус.
//
// Переход статуса выполняется в транзакции с блокировкой строки. Ошибка перехода возвращается как error и
// никаких побочных эффектов не запускает. После фиксации перехода выполняются побочные эффекты: бонус рефереру
// (только для approved) и удаление скриншота. Их сбои переход не откатывают, а попадают в Outcome и в
// алерты оператора.
func (s *SubmissionService) Decide(
	ctx context.Context,
	id int64,
	decision domain.SubmissionDecision,
) (*domain.PaymentSubmission, *domain.Outcome, error) {
	if !decision.Valid() {
		return nil, nil, domain.NewValidationError("decision", "must be approved or rejected")
	}

	var sub *domain.PaymentSubmission
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[SubmissionRepository](tx, uow.RepositoryName(repoargs.SubmissionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		current, findErr := repo.FindByIDForUpdate(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.Status != domain.SubmissionStatusPending {
			return domain.ErrInvalidTransition
		}
		var updErr error
		sub, updErr = repo.UpdateStatus(c, id, decision.Status())
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("deciding payment submission %d: %w", id, txErr)
	}
	s.metrics.SubmissionDecided(string(decision))

	outcome := new(domain.Outcome)
	if decision == domain.SubmissionApprove && sub.ReferrerID.Valid {
		if _, err := s.referrals.AwardApprovalBonus(ctx, sub.ReferrerID.UUID, sub.PlanID); err != nil {
			outcome.Fail(domain.SideEffectReferralBonus, err)
		}
	}
	if sub.ScreenshotPath != "" {
		if err := s.storage.Delete(ctx, sub.ScreenshotPath); err != nil {
			outcome.Fail(domain.SideEffectProofDeletion, err)
		}
	}
	s.alerts.RaiseOutcome(ctx, fmt.Sprintf("payment submission %d", id), outcome)
	return sub, outcome, nil
}
