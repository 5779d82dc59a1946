package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const profileColumns = `id, created_at, updated_at, username, email, balance, invested, plan_id,
	investment_amount, daily_return_amount, investment_date, withdrawal_method`

const defaultProfilesLimit uint = 100

type ProfileRepository struct {
	conn uow.DBTX
}

func NewProfileRepository(conn uow.DBTX) *ProfileRepository {
	return &ProfileRepository{conn: conn}
}

// Create создает профиль инвестора. Конфликт username или email возвращает domain.ErrDuplicateKey.
func (r *ProfileRepository) Create(ctx context.Context, args repoargs.CreateProfile) (*domain.Profile, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO profiles (id, username, email, balance, invested, plan_id,
		                      investment_amount, daily_return_amount, investment_date)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6, $7, $8)
		RETURNING `+profileColumns,
		args.ID, args.Username, args.Email, args.Balance, args.PlanID,
		args.InvestmentAmount, args.DailyReturnAmount, args.InvestmentDate,
	)
	p, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "creating profile %s", args.Username)
	}
	return p, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "finding profile %s", id)
	}
	return p, nil
}

// Conflicts проверяет, заняты ли username и email другими профилями.
func (r *ProfileRepository) Conflicts(
	ctx context.Context,
	username, email string,
) (*repoargs.ProfileConflicts, error) {
	var res repoargs.ProfileConflicts
	err := r.conn.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM profiles WHERE username = $1),
		       EXISTS (SELECT 1 FROM profiles WHERE lower(email) = lower($2))`,
		username, email,
	).Scan(&res.UsernameTaken, &res.EmailTaken)
	if err != nil {
		return nil, convertErr(err, "checking profile conflicts")
	}
	return &res, nil
}

// InvestedIDs возвращает id всех профилей с активной инвестицией.
func (r *ProfileRepository) InvestedIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.conn.Query(ctx, `SELECT id FROM profiles WHERE invested ORDER BY created_at`)
	if err != nil {
		return nil, convertErr(err, "selecting invested profiles")
	}
	ids, collectErr := collectUUIDs(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "selecting invested profiles")
	}
	return ids, nil
}

// List возвращает профили, отсортированные по дате регистрации (новые первыми).
func (r *ProfileRepository) List(ctx context.Context, args repoargs.ListProfiles) ([]domain.Profile, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(args.Query)) + "%"
	rows, err := r.conn.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE $1 = '%%' OR username ILIKE $1 OR email ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		pattern, limitOrDefault(args.Limit, defaultProfilesLimit), int64(args.Offset), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "listing profiles")
	}
	profiles, collectErr := collect(rows, scanProfile)
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing profiles")
	}
	return profiles, nil
}

// AddBalance атомарно увеличивает баланс и возвращает новое значение.
func (r *ProfileRepository) AddBalance(
	ctx context.Context,
	id uuid.UUID,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.conn.QueryRow(ctx, `
		UPDATE profiles SET balance = balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING balance`, id, amount,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "crediting profile %s", id)
	}
	return balance, nil
}

// DebitBalance атомарно списывает amount, только если баланса хватает. Иначе domain.ErrNotEnoughBalance.
func (r *ProfileRepository) DebitBalance(
	ctx context.Context,
	id uuid.UUID,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.conn.QueryRow(ctx, `
		UPDATE profiles SET balance = balance - $2, updated_at = now()
		WHERE id = $1 AND balance >= $2
		RETURNING balance`, id, amount,
	).Scan(&balance)
	if err != nil {
		convErr := convertErr(err, "debiting profile %s", id)
		if errors.Is(convErr, domain.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("[repository/debiting profile %s] %w", id, domain.ErrNotEnoughBalance)
		}
		return decimal.Zero, convErr
	}
	return balance, nil
}

func (r *ProfileRepository) UpdateWithdrawalMethod(
	ctx context.Context,
	id uuid.UUID,
	method domain.WithdrawalMethod,
) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE profiles SET withdrawal_method = $2, updated_at = now() WHERE id = $1`, id, method)
	if err != nil {
		return convertErr(err, "updating withdrawal method of %s", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/updating withdrawal method of %s] %w", id, domain.ErrRecordNotFound)
	}
	return nil
}

// UsernamesByIDs возвращает username для каждого найденного id.
func (r *ProfileRepository) UsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	res := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	rows, err := r.conn.Query(ctx, `SELECT id, username FROM profiles WHERE id = ANY($1::uuid[])`, strIDs)
	if err != nil {
		return nil, convertErr(err, "selecting usernames")
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var username string
		if scanErr := rows.Scan(&id, &username); scanErr != nil {
			return nil, convertErr(scanErr, "selecting usernames")
		}
		res[id] = username
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "selecting usernames")
	}
	return res, nil
}

func (r *ProfileRepository) Stats(ctx context.Context) (*repoargs.ProfileStats, error) {
	var stats repoargs.ProfileStats
	err := r.conn.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE invested),
		       coalesce(sum(investment_amount) FILTER (WHERE invested), 0)
		FROM profiles`,
	).Scan(&stats.TotalUsers, &stats.InvestedUsers, &stats.TotalInvestment)
	if err != nil {
		return nil, convertErr(err, "profile stats")
	}
	return &stats, nil
}

// DailySignups кол-во регистраций по дням начиная с from. Дни без регистраций в выборку не попадают.
func (r *ProfileRepository) DailySignups(ctx context.Context, from time.Time) ([]repoargs.DailyTotal, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT date_trunc('day', created_at) AS day, count(*), coalesce(sum(investment_amount), 0)
		FROM profiles
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day`, from,
	)
	if err != nil {
		return nil, convertErr(err, "daily signups")
	}
	totals, collectErr := collect(rows, scanDailyTotal)
	if collectErr != nil {
		return nil, convertErr(collectErr, "daily signups")
	}
	return totals, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Username, &p.Email, &p.Balance, &p.Invested, &p.PlanID,
		&p.InvestmentAmount, &p.DailyReturnAmount, &p.InvestmentDate, &p.WithdrawalMethod,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

func scanDailyTotal(row rowScanner) (*repoargs.DailyTotal, error) {
	var t repoargs.DailyTotal
	if err := row.Scan(&t.Day, &t.Count, &t.Amount); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}

func collectUUIDs(rows pgx.Rows) ([]uuid.UUID, error) {
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID]) //nolint:wrapcheck
}

// escapeLike экранирует спецсимволы шаблона LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
