package pgrepo

import (
	"context"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const alertColumns = `id, created_at, source, subject, message, resolved_at`

const defaultAlertsLimit uint = 100

type AlertRepository struct {
	conn uow.DBTX
}

func NewAlertRepository(conn uow.DBTX) *AlertRepository {
	return &AlertRepository{conn: conn}
}

func (r *AlertRepository) Create(ctx context.Context, args repoargs.CreateAlert) (*domain.OperatorAlert, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO operator_alerts (source, subject, message)
		VALUES ($1, $2, $3)
		RETURNING `+alertColumns,
		args.Source, args.Subject, args.Message,
	)
	a, err := scanAlert(row)
	if err != nil {
		return nil, convertErr(err, "creating operator alert")
	}
	return a, nil
}

// List возвращает последние алерты. При onlyOpen=true только неразобранные.
func (r *AlertRepository) List(ctx context.Context, onlyOpen bool, limit uint) ([]domain.OperatorAlert, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+alertColumns+`
		FROM operator_alerts
		WHERE NOT $1 OR resolved_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2`, onlyOpen, limitOrDefault(limit, defaultAlertsLimit),
	)
	if err != nil {
		return nil, convertErr(err, "listing operator alerts")
	}
	alerts, collectErr := collect(rows, scanAlert)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing operator alerts")
	}
	return alerts, nil
}

// Resolve помечает алерт разобранным. Повторный вызов не меняет время разбора.
func (r *AlertRepository) Resolve(ctx context.Context, id int64) (*domain.OperatorAlert, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE operator_alerts SET resolved_at = coalesce(resolved_at, now())
		WHERE id = $1
		RETURNING `+alertColumns, id,
	)
	a, err := scanAlert(row)
	if err != nil {
		return nil, convertErr(err, "resolving operator alert %d", id)
	}
	return a, nil
}

func scanAlert(row rowScanner) (*domain.OperatorAlert, error) {
	var a domain.OperatorAlert
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.Source, &a.Subject, &a.Message, &a.ResolvedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
