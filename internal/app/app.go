package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sajidali832/envo4/internal/config"
	"github.com/sajidali832/envo4/internal/lock"
	"github.com/sajidali832/envo4/internal/metrics"
	"github.com/sajidali832/envo4/internal/plans"
	"github.com/sajidali832/envo4/internal/repository/pgrepo"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/internal/service"
	"github.com/sajidali832/envo4/internal/transport/api"
	"github.com/sajidali832/envo4/internal/transport/api/middlewares"
	"github.com/sajidali832/envo4/internal/transport/earnings"
	"github.com/sajidali832/envo4/internal/transport/mailer"
	"github.com/sajidali832/envo4/internal/transport/notify"
	"github.com/sajidali832/envo4/internal/transport/storage"
	"github.com/sajidali832/envo4/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logConfig()

	loc, locErr := a.Config.Location()
	if locErr != nil {
		return fmt.Errorf("app run: %s", locErr.Error())
	}
	catalog, catalogErr := plans.Load(a.Config.PlansFile)
	if catalogErr != nil {
		return fmt.Errorf("app run: %s", catalogErr.Error())
	}

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	objectStorage, uploadsDir, storageErr := a.initStorage()
	if storageErr != nil {
		return fmt.Errorf("app run: %s", storageErr.Error())
	}

	locker, closeLocker, lockErr := a.initLocker(notifyCtx)
	if lockErr != nil {
		return fmt.Errorf("app run: %s", lockErr.Error())
	}
	defer closeLocker()

	sender, senderErr := a.initSender(catalog)
	if senderErr != nil {
		return fmt.Errorf("app run: %s", senderErr.Error())
	}

	registry := metrics.New()
	dispatcher := notify.New(sender, a.Logger).
		SetWorkers(a.Config.EmailWorkers).
		SetQueueSize(a.Config.EmailQueueSize).
		SetRetry(a.Config.EmailMaxAttempts, a.Config.EmailRetryDelay).
		SetObserver(registry)

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Storage:      objectStorage,
		Notifier:     dispatcher,
		Locker:       locker,
		Metrics:      registry,
		Catalog:      catalog,
		Location:     loc,
		Logger:       a.Logger,
		JWTSecret:    []byte(a.Config.JWTSecret),
		AdminEmail:   a.Config.AdminEmail,
		DashboardURL: a.Config.DashboardURL,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}
	dispatcher.SetAlerts(services.AlertService)

	if a.Config.AdminPassword != "" {
		created, adminErr := services.IdentityService.EnsureAdmin(notifyCtx, a.Config.AdminEmail, a.Config.AdminPassword)
		if adminErr != nil {
			return fmt.Errorf("app run: ensure admin: %s", adminErr.Error())
		}
		if created {
			a.Logger.WithField("email", a.Config.AdminEmail).Info("admin account created")
		}
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		UserService:       services.UserService,
		SubmissionService: services.SubmissionService,
		ReferralService:   services.ReferralService,
		WithdrawalService: services.WithdrawalService,
		AccrualService:    services.AccrualService,
		AdminService:      services.AdminService,
		AlertService:      services.AlertService,
		Catalog:           catalog,
		JWTSecretKey:      []byte(a.Config.JWTSecret),
		CronSecret:        a.Config.CronSecret,
		Limiter:           middlewares.NewIPRateLimiter(a.Config.RateLimitRPS, a.Config.RateLimitBurst),
		Observer:          registry,
		MetricsHandler:    registry.Handler(),
		CORSOrigins:       a.Config.CORSOrigins,
		UploadsDir:        uploadsDir,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	scheduler, schedErr := earnings.New(services.AccrualService, a.Config.CronSchedule, loc, a.Logger)
	if schedErr != nil {
		return fmt.Errorf("app run: %s", schedErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	// фоновые задачи дорабатывают после отмены notifyCtx, Run дожидается их завершения.
	var background errgroup.Group
	background.Go(func() error {
		dispatcher.Run(notifyCtx)
		return nil
	})
	background.Go(func() error {
		scheduler.Run(notifyCtx)
		return nil
	})

	select {
	case <-notifyCtx.Done():
		_ = background.Wait()
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		stop()
		_ = background.Wait()
		return err
	}
}

func (a *App) logConfig() {
	a.Logger.WithFields(logrus.Fields{
		"address":      a.Config.RunAddress,
		"migrations":   a.Config.MigrationsDir,
		"timezone":     a.Config.Timezone,
		"cronSchedule": a.Config.CronSchedule,
		"plansFile":    a.Config.PlansFile,
		"supabase":     a.Config.SupabaseEnabled(),
		"email":        a.Config.ResendAPIKey != "",
		"redis":        a.Config.RedisURL != "",
		"adminEmail":   a.Config.AdminEmail,
	}).Info("Starting app")
}

// initStorage Supabase Storage, если он настроен, иначе локальная директория. Второе значение
// директория для раздачи через роутер, пустая для Supabase.
func (a *App) initStorage() (service.ObjectStorage, string, error) {
	if a.Config.SupabaseEnabled() {
		s, err := storage.NewSupabase(a.Config.SupabaseURL, a.Config.SupabaseServiceKey, a.Config.StorageBucket)
		if err != nil {
			return nil, "", fmt.Errorf("init storage: %s", err.Error())
		}
		return s, "", nil
	}
	s, err := storage.NewFS(a.Config.StorageDir, api.UploadsRoute)
	if err != nil {
		return nil, "", fmt.Errorf("init storage: %s", err.Error())
	}
	a.Logger.WithField("dir", a.Config.StorageDir).Warn("supabase is not configured, storing screenshots locally")
	return s, a.Config.StorageDir, nil
}

// initLocker Redis блокировка при заданном REDIS_URL, иначе блокировка в памяти процесса.
func (a *App) initLocker(ctx context.Context) (service.Locker, func(), error) {
	if a.Config.RedisURL == "" {
		return lock.NewLocal(), func() {}, nil
	}
	locker, client, err := lock.NewRedisFromURL(ctx, a.Config.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("init locker: %s", err.Error())
	}
	return locker, func() {
		if closeErr := client.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close redis client")
		}
	}, nil
}

func (a *App) initSender(catalog *plans.Catalog) (notify.Sender, error) {
	if a.Config.ResendAPIKey == "" {
		return notify.NewLogSender(a.Logger), nil
	}
	sender, err := mailer.New(mailer.Config{
		APIKey:       a.Config.ResendAPIKey,
		From:         a.Config.EmailFrom,
		DashboardURL: a.Config.DashboardURL,
		DailyEarning: catalog.Rules.DailyEarning,
	})
	if err != nil {
		return nil, fmt.Errorf("init sender: %s", err.Error())
	}
	return sender, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.IdentityRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewIdentityRepository(dbtx)
		},
		repoargs.ProfileRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProfileRepository(dbtx)
		},
		repoargs.SubmissionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSubmissionRepository(dbtx)
		},
		repoargs.EarningRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewEarningRepository(dbtx)
		},
		repoargs.ReferralRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewReferralRepository(dbtx)
		},
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWithdrawalRepository(dbtx)
		},
		repoargs.AlertRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAlertRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW %s: %s", name, regErr.Error())
		}
	}

	return unitOfWork, nil
}
