package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/db"
)

const (
	connectAttempts      uint = 30
	connectRetryInterval      = 3 * time.Second
	pingTimeout               = 5 * time.Second
)

// Connect открывает пул соединений и накатывает миграции. Пока postgres недоступен, попытки повторяются
// каждые connectRetryInterval. Пустой migrationsDir означает встроенные миграции db.Migrations.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	log := l.WithFields(logrus.Fields{
		"component": "pgrepo",
		"module":    "connect",
	})

	var (
		pool *pgxpool.Pool
		err  error
	)
	for attempt := uint(1); ; attempt++ {
		pool, err = openPool(ctx, dsn)
		if err == nil {
			break
		}
		if attempt == connectAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %s", attempt, err.Error())
		}
		log.WithError(err).
			WithField("attempt", fmt.Sprintf("#%d / %d", attempt, connectAttempts)).
			Warnf("postgres is unavailable, retrying in %.f seconds", connectRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(connectRetryInterval):
		}
	}

	if err = applyMigrations(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	log.WithField("dir", migrationsSourceName(migrationsDir)).Info("postgres migrations applied")
	return pool, nil
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %s", err.Error())
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %s", err.Error())
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %s", err.Error())
	}
	return pool, nil
}

func applyMigrations(dir, dsn string) error {
	m, err := newMigrate(dir, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func newMigrate(dir, dsn string) (*migrate.Migrate, error) {
	if dir != "" {
		return migrate.New("file://"+dir, dsn) //nolint:wrapcheck
	}
	src, err := iofs.New(db.Migrations, db.MigrationsRoot)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return migrate.NewWithSourceInstance("iofs", src, dsn) //nolint:wrapcheck
}

func migrationsSourceName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
