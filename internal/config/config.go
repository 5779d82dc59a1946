package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`

	// CronSecret bearer токен внешнего планировщика. Пустое значение закрывает эндпоинт.
	CronSecret   string `env:"CRON_SECRET"`
	CronSchedule string `env:"CRON_SCHEDULE" envDefault:"5 0 * * *"`
	Timezone     string `env:"TIMEZONE"      envDefault:"Asia/Karachi"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	PlansFile     string `env:"PLANS_FILE"`

	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_KEY"`
	StorageBucket      string `env:"STORAGE_BUCKET"       envDefault:"payment-screenshots"`
	StorageDir         string `env:"STORAGE_DIR"          envDefault:"uploads"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM"     envDefault:"ENVO-EARN <onboarding@resend.dev>"`
	EmailWorkers uint   `env:"EMAIL_WORKERS"  envDefault:"2"`
	DashboardURL string `env:"DASHBOARD_URL"  envDefault:"http://localhost:3000"`

	// параметры очереди приветственных писем.
	EmailQueueSize   uint          `env:"EMAIL_QUEUE_SIZE"   envDefault:"256"`
	EmailMaxAttempts uint          `env:"EMAIL_MAX_ATTEMPTS" envDefault:"3"`
	EmailRetryDelay  time.Duration `env:"EMAIL_RETRY_DELAY"  envDefault:"2s"`

	RedisURL       string   `env:"REDIS_URL"`
	CORSOrigins    []string `env:"CORS_ORIGINS"     envSeparator:","`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS"   envDefault:"1"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

// Location часовой пояс для границ суток начислений.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %s", c.Timezone, err.Error())
	}
	return loc, nil
}

// SupabaseEnabled true если заданы параметры Supabase Storage, иначе скриншоты хранятся в StorageDir.
func (c *Config) SupabaseEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func LoadConfig() (*Config, error) {
	// .env необязателен.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return load(flag.CommandLine, os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(fs *flag.FlagSet, args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(fs, args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.AdminPassword != "" && conf.AdminEmail == "" {
		return nil, errors.New("admin password is set without admin email")
	}
	if _, locErr := conf.Location(); locErr != nil {
		return nil, locErr
	}
	return conf, nil
}

func loadFlags(fs *flag.FlagSet, args []string, flagConfig *Config) error {
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "", "Database migrations directory, embedded migrations when empty")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig значения окружения имеют приоритет над флагами. Поля без флагов берутся из окружения.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
