package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	UploadServiceTimeout  = 30 * time.Second
	CronServiceTimeout    = 5 * time.Minute
)

const (
	RouteGroup       = "/api"
	SubmissionsRoute = "/submissions"
	StatusRoute      = "/submissions/status"
	PlansRoute       = "/plans"
	RegisterRoute    = "/user/register"
	LoginRoute       = "/user/login"
	DashboardRoute   = "/user/dashboard"
	ReferralsRoute   = "/user/referrals"
	MethodRoute      = "/user/withdrawal-method"
	WithdrawalsRoute = "/user/withdrawals"

	DailyEarningsRoute = "/cron/add-daily-earnings"

	AdminSubmissionsRoute        = "/admin/submissions"
	AdminSubmissionDecisionRoute = "/admin/submissions/:id/decision"
	AdminWithdrawalsRoute        = "/admin/withdrawals"
	AdminWithdrawalDecisionRoute = "/admin/withdrawals/:id/decision"
	AdminUsersRoute              = "/admin/users"
	AdminUserRoute               = "/admin/users/:id"
	AdminUserExportRoute         = "/admin/users/:id/export"
	AdminStatsRoute              = "/admin/stats"
	AdminAlertsRoute             = "/admin/alerts"
	AdminAlertResolveRoute       = "/admin/alerts/:id/resolve"

	MetricsRoute = "/metrics"
	UploadsRoute = "/uploads"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	UserService       UserServicer
	SubmissionService SubmissionServicer
	ReferralService   ReferralServicer
	WithdrawalService WithdrawalServicer
	AccrualService    AccrualServicer
	AdminService      AdminServicer
	AlertService      AlertServicer
	Catalog           PlanCatalog
	JWTSecretKey      []byte
	CronSecret        string
	// Limiter ограничивает публичные формы. nil отключает ограничение.
	Limiter        *middlewares.IPRateLimiter
	Observer       middlewares.RequestObserver
	MetricsHandler http.Handler
	CORSOrigins    []string
	// UploadsDir раздается по UploadsRoute, если скриншоты хранятся локально.
	UploadsDir string
}

func (a RouterArgs) validate() error {
	if a.UserService == nil || a.SubmissionService == nil || a.ReferralService == nil ||
		a.WithdrawalService == nil || a.AccrualService == nil || a.AdminService == nil ||
		a.AlertService == nil || a.Catalog == nil {
		return errors.New("router: all services are required")
	}
	if len(a.JWTSecretKey) == 0 {
		return errors.New("router: jwt secret is required")
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Authorization", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.MaxMultipartMemory = MaxProofSize
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if args.Observer != nil {
		r.Use(middlewares.Metrics(args.Observer))
	}
	r.Use(cors.New(corsConfig(args.CORSOrigins)))
	r.Use(middlewares.Errors())

	if args.MetricsHandler != nil {
		r.GET(MetricsRoute, gin.WrapH(args.MetricsHandler))
	}
	if args.UploadsDir != "" {
		r.Static(UploadsRoute, args.UploadsDir)
	}

	authHandler := NewAuthHandler(args.UserService)
	submissionHandler := NewSubmissionHandler(args.SubmissionService, args.Catalog)
	accountHandler := NewAccountHandler(args.UserService, args.ReferralService, args.WithdrawalService)
	cronHandler := NewCronHandler(args.AccrualService)
	adminHandler := NewAdminHandler(AdminHandlerArgs{
		SubmissionService: args.SubmissionService,
		WithdrawalService: args.WithdrawalService,
		AdminService:      args.AdminService,
		AlertService:      args.AlertService,
	})

	limited := middlewares.RateLimit(args.Limiter)

	api := r.Group(RouteGroup)

	api.POST(SubmissionsRoute, limited, submissionHandler.Create)
	api.GET(StatusRoute, submissionHandler.Status)
	api.GET(PlansRoute, submissionHandler.Plans)
	api.POST(RegisterRoute, limited, authHandler.Register)
	api.POST(LoginRoute, limited, authHandler.Login)

	api.POST(DailyEarningsRoute, middlewares.SharedSecret(args.CronSecret), cronHandler.AddDailyEarnings)

	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.GET(DashboardRoute, accountHandler.Dashboard)
	user.GET(ReferralsRoute, accountHandler.Referrals)
	user.PUT(MethodRoute, accountHandler.SaveWithdrawalMethod)
	user.POST(WithdrawalsRoute, accountHandler.RequestWithdrawal)
	user.GET(WithdrawalsRoute, accountHandler.Withdrawals)

	admin := user.Group("", middlewares.AdminRequired())
	admin.GET(AdminSubmissionsRoute, adminHandler.PendingSubmissions)
	admin.POST(AdminSubmissionDecisionRoute, adminHandler.DecideSubmission)
	admin.GET(AdminWithdrawalsRoute, adminHandler.Withdrawals)
	admin.POST(AdminWithdrawalDecisionRoute, adminHandler.DecideWithdrawal)
	admin.GET(AdminUsersRoute, adminHandler.Users)
	admin.GET(AdminUserRoute, adminHandler.UserDetails)
	admin.GET(AdminUserExportRoute, adminHandler.ExportUser)
	admin.DELETE(AdminUserRoute, adminHandler.DeleteUser)
	admin.GET(AdminStatsRoute, adminHandler.Stats)
	admin.GET(AdminAlertsRoute, adminHandler.Alerts)
	admin.POST(AdminAlertResolveRoute, adminHandler.ResolveAlert)

	return r, nil
}
