package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/service/psswd"
	"github.com/sajidali832/envo4/pkg/uow"
)

type AppServices struct {
	IdentityService   *IdentityService
	UserService       *UserService
	SubmissionService *SubmissionService
	ReferralService   *ReferralService
	WithdrawalService *WithdrawalService
	AccrualService    *AccrualService
	AdminService      *AdminService
	AlertService      *AlertService
}

// FactoryArgs внешние зависимости сервисов.
type FactoryArgs struct {
	Storage      ObjectStorage
	Notifier     WelcomeNotifier
	Locker       Locker
	Metrics      Metrics
	Catalog      *plans.Catalog
	Location     *time.Location
	Logger       *logrus.Logger
	JWTSecret    []byte
	AdminEmail   string
	DashboardURL string
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	alertService, err := NewAlertService(unitOfWork, args.Metrics, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	identityService, err := NewIdentityService(unitOfWork, psswd.New(bcrypt.DefaultCost))
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	referralService, err := NewReferralService(unitOfWork, args.Catalog, args.DashboardURL)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	userService, err := NewUserService(unitOfWork, UserServiceArgs{
		Identity:       identityService,
		Referrals:      referralService,
		Notifier:       args.Notifier,
		Alerts:         alertService,
		Catalog:        args.Catalog,
		JWTTokenSecret: args.JWTSecret,
		AdminEmail:     args.AdminEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	submissionService, err := NewSubmissionService(unitOfWork, SubmissionServiceArgs{
		Storage:   args.Storage,
		Referrals: referralService,
		Alerts:    alertService,
		Metrics:   args.Metrics,
		Catalog:   args.Catalog,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	withdrawalService, err := NewWithdrawalService(unitOfWork, args.Metrics, args.Catalog)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	accrualService, err := NewAccrualService(unitOfWork, AccrualServiceArgs{
		Locker:   args.Locker,
		Alerts:   alertService,
		Metrics:  args.Metrics,
		Catalog:  args.Catalog,
		Location: args.Location,
		Logger:   args.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	adminService, err := NewAdminService(unitOfWork, identityService, args.Location)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		IdentityService:   identityService,
		UserService:       userService,
		SubmissionService: submissionService,
		ReferralService:   referralService,
		WithdrawalService: withdrawalService,
		AccrualService:    accrualService,
		AdminService:      adminService,
		AlertService:      alertService,
	}, nil
}
