package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*service.RegisterResult, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*service.LoginResult, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*service.Dashboard, error)
}

type SubmissionServicer interface {
	Submit(ctx context.Context, args service.SubmitArgs) (*domain.PaymentSubmission, error)
	Status(ctx context.Context, phone string) (*domain.PaymentSubmission, error)
	ListPending(ctx context.Context) ([]domain.PaymentSubmission, error)
	Decide(
		ctx context.Context,
		id int64,
		decision domain.SubmissionDecision,
	) (*domain.PaymentSubmission, *domain.Outcome, error)
}

type ReferralServicer interface {
	Summary(ctx context.Context, userID uuid.UUID) (*service.ReferralSummary, error)
}

type WithdrawalServicer interface {
	SaveMethod(ctx context.Context, userID uuid.UUID, method domain.WithdrawalMethod) error
	Request(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Withdrawal, error)
	History(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
	Decide(ctx context.Context, id int64, decision domain.WithdrawalDecision) (*domain.Withdrawal, error)
}

type AccrualServicer interface {
	RunDaily(ctx context.Context) (*service.AccrualReport, error)
}

type AdminServicer interface {
	Stats(ctx context.Context) (*service.AdminStats, error)
	Users(ctx context.Context, query string, limit, offset uint) ([]domain.Profile, error)
	UserDetails(ctx context.Context, userID uuid.UUID) (*service.UserDetails, error)
	ExportUserDetails(ctx context.Context, userID uuid.UUID, w io.Writer) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	Withdrawals(ctx context.Context, status domain.WithdrawalStatus, limit uint) ([]service.WithdrawalListItem, error)
}

type AlertServicer interface {
	List(ctx context.Context, onlyOpen bool) ([]domain.OperatorAlert, error)
	Resolve(ctx context.Context, id int64) (*domain.OperatorAlert, error)
}

type PlanCatalog interface {
	All() []plans.Plan
}
