package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/internal/service/tokens"
	"github.com/sajidali832/envo4/pkg/uow"
)

const (
	JWTTokenExpire = 24 * time.Hour

	dashboardEarningsLimit uint = 30
)

type UserService struct {
	uow            uow.UOW
	profileRepo    ProfileRepository
	submissionRepo SubmissionRepository
	earningRepo    EarningRepository
	referralRepo   ReferralRepository
	identity       IdentityProvider
	referrals      ReferralBackfiller
	notifier       WelcomeNotifier
	alerts         AlertRaiser
	catalog        *plans.Catalog
	validate       *validator.Validate
	jwtTokenSecret []byte
	adminEmail     string
	now            func() time.Time
}

type UserServiceArgs struct {
	Identity       IdentityProvider
	Referrals      ReferralBackfiller
	Notifier       WelcomeNotifier
	Alerts         AlertRaiser
	Catalog        *plans.Catalog
	JWTTokenSecret []byte
	AdminEmail     string
}

func NewUserService(u uow.UOW, args UserServiceArgs) (*UserService, error) {
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	submissionRepo, err := uow.GetRepositoryAs[SubmissionRepository](u, uow.RepositoryName(repoargs.SubmissionRepoName))
	if err != nil {
		return nil, err
	}
	earningRepo, err := uow.GetRepositoryAs[EarningRepository](u, uow.RepositoryName(repoargs.EarningRepoName))
	if err != nil {
		return nil, err
	}
	referralRepo, err := uow.GetRepositoryAs[ReferralRepository](u, uow.RepositoryName(repoargs.ReferralRepoName))
	if err != nil {
		return nil, err
	}
	return &UserService{
		uow:            u,
		profileRepo:    profileRepo,
		submissionRepo: submissionRepo,
		earningRepo:    earningRepo,
		referralRepo:   referralRepo,
		identity:       args.Identity,
		referrals:      args.Referrals,
		notifier:       args.Notifier,
		alerts:         args.Alerts,
		catalog:        args.Catalog,
		validate:       validator.New(),
		jwtTokenSecret: args.JWTTokenSecret,
		adminEmail:     strings.TrimSpace(args.AdminEmail),
		now:            time.Now,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Email    string
	Password string
	Phone    string
}

type RegisterResult struct {
	Profile *domain.Profile
	Token   string
	Outcome *domain.Outcome
}

// Register создает аккаунт инвестора по одобренной заявке об оплате.
//
// Алгоритм работы:
//  1. Валидация входных данных и проверка предусловий: последняя заявка для телефона одобрена и еще не
//     привязана к аккаунту, username и email свободны.
//  2. Создание учетной записи в провайдере.
//  3. В одной транзакции: профиль, привязка заявки, привязка записи реферала. Если транзакция не удалась,
//     учетная запись удаляется.
//  4. Выдача токена и постановка приветственного письма в очередь.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*RegisterResult, error) {
	if err := s.validateRegister(&args); err != nil {
		return nil, err
	}
	// адрес администратора зарезервирован, инвестор не может его занять.
	if s.isAdmin(args.Email) {
		return nil, fmt.Errorf("registering user: %w", domain.ErrDuplicateEmail)
	}

	sub, subErr := s.submissionRepo.FindLatestByAccountNumber(ctx, args.Phone)
	if subErr != nil {
		if errors.Is(subErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("registering user: %w", domain.ErrNoApprovedSubmission)
		}
		return nil, fmt.Errorf("registering user: %w", subErr)
	}
	if sub.Status != domain.SubmissionStatusApproved {
		return nil, fmt.Errorf("registering user: %w", domain.ErrNoApprovedSubmission)
	}
	if sub.Linked() {
		return nil, fmt.Errorf("registering user: %w", domain.ErrSubmissionAlreadyUsed)
	}

	conflicts, conflictsErr := s.profileRepo.Conflicts(ctx, args.Username, args.Email)
	if conflictsErr != nil {
		return nil, fmt.Errorf("registering user: %w", conflictsErr)
	}
	if conflicts.UsernameTaken {
		return nil, fmt.Errorf("registering user: %w", domain.ErrDuplicateUsername)
	}
	if conflicts.EmailTaken {
		return nil, fmt.Errorf("registering user: %w", domain.ErrDuplicateEmail)
	}

	identity, signUpErr := s.identity.SignUp(ctx, args.Email, args.Password)
	if signUpErr != nil {
		return nil, fmt.Errorf("registering user: %w", signUpErr)
	}

	outcome := new(domain.Outcome)
	profile, txErr := s.createProfile(ctx, identity, args, sub, outcome)
	if txErr != nil {
		// учетная запись без профиля не должна остаться.
		if delErr := s.identity.Delete(context.WithoutCancel(ctx), identity.ID); delErr != nil {
			s.alerts.Raise(ctx, string(domain.SideEffectIdentityCleanup), "orphaned identity "+identity.ID.String(), delErr)
		}
		return nil, fmt.Errorf("registering user: %w", txErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(profile.ID, false, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, fmt.Errorf("registering user: %s", tokenErr.Error())
	}

	if err := s.notifier.NotifyWelcome(ctx, profile.Email, profile.Username); err != nil {
		outcome.Fail(domain.SideEffectWelcomeEmail, err)
	}
	s.alerts.RaiseOutcome(ctx, "registration of "+profile.Username, outcome)

	return &RegisterResult{Profile: profile, Token: token, Outcome: outcome}, nil
}

func (s *UserService) createProfile(
	ctx context.Context,
	identity *domain.Identity,
	args RegisterUserArgs,
	sub *domain.PaymentSubmission,
	outcome *domain.Outcome,
) (*domain.Profile, error) {
	balance := decimal.Zero
	if sub.ReferrerID.Valid {
		balance = s.catalog.Rules.InviteeBonus
	}

	var profile *domain.Profile
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		profileRepo, repoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		subRepo, repoErr := uow.GetAs[SubmissionRepository](tx, uow.RepositoryName(repoargs.SubmissionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		profile, createErr = profileRepo.Create(c, repoargs.CreateProfile{
			ID:                identity.ID,
			Username:          args.Username,
			Email:             args.Email,
			Balance:           balance,
			PlanID:            sub.PlanID,
			InvestmentAmount:  sub.InvestmentAmount,
			DailyReturnAmount: sub.DailyReturnAmount,
			InvestmentDate:    s.now(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		linkErr := subRepo.LinkUser(c, repoargs.LinkSubmissionUser{
			SubmissionID: sub.ID,
			UserID:       profile.ID,
			UserEmail:    profile.Email,
		})
		if linkErr != nil {
			if errors.Is(linkErr, domain.ErrRecordNotFound) {
				return domain.ErrSubmissionAlreadyUsed
			}
			return linkErr //nolint:wrapcheck
		}

		if !sub.ReferrerID.Valid {
			return nil
		}
		backfillErr := s.referrals.BackfillReferredUser(c, tx, sub.ReferrerID.UUID, profile.ID)
		if backfillErr != nil {
			if errors.Is(backfillErr, domain.ErrRecordNotFound) {
				outcome.Fail(domain.SideEffectReferralBackfill, backfillErr)
				return nil
			}
			return backfillErr //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return profile, nil
}

func (s *UserService) validateRegister(args *RegisterUserArgs) error {
	args.Username = strings.TrimSpace(args.Username)
	args.Email = strings.ToLower(strings.TrimSpace(args.Email))
	args.Phone = strings.TrimSpace(args.Phone)

	if l := len([]rune(args.Username)); l < 3 || l > 20 {
		return domain.NewValidationError("username", "must be between 3 and 20 characters")
	}
	if err := s.validate.Var(args.Email, "required,email"); err != nil {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	if len(args.Password) < 8 {
		return domain.NewValidationError("password", "must be at least 8 characters")
	}
	if len(args.Phone) < 11 {
		return domain.NewValidationError("phone", "must be at least 11 characters")
	}
	return nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID   uuid.UUID
	Token    string
	Admin    bool
	Invested bool
}

// Login аутентификация по email и паролю. Для неизвестного email возвращает domain.ErrRecordNotFound, для
// неверного пароля domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*LoginResult, error) {
	identity, err := s.identity.SignIn(ctx, args.Email, args.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	res := LoginResult{UserID: identity.ID}

	profile, profileErr := s.profileRepo.FindByID(ctx, identity.ID)
	switch {
	case profileErr == nil:
		// учетная запись с профилем инвестора администратором не считается.
		res.Invested = profile.Invested
	case errors.Is(profileErr, domain.ErrRecordNotFound):
		res.Admin = s.isAdmin(identity.Email)
	default:
		return nil, fmt.Errorf("login: %w", profileErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(identity.ID, res.Admin, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, fmt.Errorf("login: %s", tokenErr.Error())
	}
	res.Token = token
	return &res, nil
}

func (s *UserService) isAdmin(email string) bool {
	return s.adminEmail != "" && strings.EqualFold(strings.TrimSpace(email), s.adminEmail)
}

type Dashboard struct {
	Profile       *domain.Profile
	PlanName      string
	TotalEarned   decimal.Decimal
	ReferralBonus decimal.Decimal
	Earnings      []domain.Earning
}

// Dashboard собирает данные кабинета пользователя. Запросы выполняются параллельно.
func (s *UserService) Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	var d Dashboard
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profileRepo.FindByID(gCtx, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		d.Profile = p
		return nil
	})
	g.Go(func() error {
		earnings, err := s.earningRepo.GetByUserID(gCtx, userID, dashboardEarningsLimit)
		if err != nil {
			return err //nolint:wrapcheck
		}
		d.Earnings = earnings
		return nil
	})
	g.Go(func() error {
		total, err := s.earningRepo.SumByUserID(gCtx, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		d.TotalEarned = total
		return nil
	})
	g.Go(func() error {
		bonus, err := s.referralRepo.SumBonusByStatus(gCtx, userID, domain.ReferralStatusInvested)
		if err != nil {
			return err //nolint:wrapcheck
		}
		d.ReferralBonus = bonus
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user dashboard: %w", err)
	}
	if plan, err := s.catalog.Get(d.Profile.PlanID); err == nil {
		d.PlanName = plan.Name
	}
	return &d, nil
}
