package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const (
	statsSeriesDays               = 7
	userDetailsEarningsLimit uint = 365
)

// AdminService выборки и действия панели администратора.
type AdminService struct {
	uow            uow.UOW
	profileRepo    ProfileRepository
	earningRepo    EarningRepository
	withdrawalRepo WithdrawalRepository
	identity       IdentityProvider
	location       *time.Location
	now            func() time.Time
}

func NewAdminService(u uow.UOW, identity IdentityProvider, location *time.Location) (*AdminService, error) {
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	earningRepo, err := uow.GetRepositoryAs[EarningRepository](u, uow.RepositoryName(repoargs.EarningRepoName))
	if err != nil {
		return nil, err
	}
	withdrawalRepo, err := uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if err != nil {
		return nil, err
	}
	if location == nil {
		location = time.Local
	}
	return &AdminService{
		uow:            u,
		profileRepo:    profileRepo,
		earningRepo:    earningRepo,
		withdrawalRepo: withdrawalRepo,
		identity:       identity,
		location:       location,
		now:            time.Now,
	}, nil
}

type DailyPoint struct {
	Day    time.Time
	Count  int64
	Amount decimal.Decimal
}

type AdminStats struct {
	TotalUsers          int64
	InvestedUsers       int64
	TotalInvestment     decimal.Decimal
	ApprovedWithdrawals decimal.Decimal
	Signups             []DailyPoint
	Withdrawals         []DailyPoint
}

// Stats сводка для главной страницы панели. Ряды Signups и Withdrawals содержат ровно statsSeriesDays
// точек, дни без событий заполнены нулями.
func (a *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	now := a.now().In(a.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.location)
	from := today.AddDate(0, 0, -(statsSeriesDays - 1))

	var (
		stats       AdminStats
		profile     *repoargs.ProfileStats
		signups     []repoargs.DailyTotal
		withdrawals []repoargs.DailyTotal
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = a.profileRepo.Stats(gCtx)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats.ApprovedWithdrawals, err = a.withdrawalRepo.SumApproved(gCtx)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		signups, err = a.profileRepo.DailySignups(gCtx, from)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		withdrawals, err = a.withdrawalRepo.DailyRequested(gCtx, from)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	stats.TotalUsers = profile.TotalUsers
	stats.InvestedUsers = profile.InvestedUsers
	stats.TotalInvestment = profile.TotalInvestment
	stats.Signups = fillSeries(from, statsSeriesDays, signups, a.location)
	stats.Withdrawals = fillSeries(from, statsSeriesDays, withdrawals, a.location)
	return &stats, nil
}

// fillSeries раскладывает агрегаты по дням начиная с from.
func fillSeries(from time.Time, days int, totals []repoargs.DailyTotal, loc *time.Location) []DailyPoint {
	byDay := make(map[string]repoargs.DailyTotal, len(totals))
	for _, t := range totals {
		byDay[t.Day.In(loc).Format(time.DateOnly)] = t
	}
	series := make([]DailyPoint, days)
	for i := range days {
		day := from.AddDate(0, 0, i)
		point := DailyPoint{Day: day, Amount: decimal.Zero}
		if t, ok := byDay[day.Format(time.DateOnly)]; ok {
			point.Count = t.Count
			point.Amount = t.Amount
		}
		series[i] = point
	}
	return series
}

func (a *AdminService) Users(ctx context.Context, query string, limit, offset uint) ([]domain.Profile, error) {
	profiles, err := a.profileRepo.List(ctx, repoargs.ListProfiles{Query: query, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return profiles, nil
}

type UserDetails struct {
	Profile     *domain.Profile
	Earnings    []domain.Earning
	Withdrawals []domain.Withdrawal
}

func (a *AdminService) UserDetails(ctx context.Context, userID uuid.UUID) (*UserDetails, error) {
	var d UserDetails
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Profile, err = a.profileRepo.FindByID(gCtx, userID)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		d.Earnings, err = a.earningRepo.GetByUserID(gCtx, userID, userDetailsEarningsLimit)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		d.Withdrawals, err = a.withdrawalRepo.GetByUserID(gCtx, userID)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user details: %w", err)
	}
	return &d, nil
}

// ExportUserDetails пишет детали пользователя в w в формате CSV: профиль, начисления, выводы.
func (a *AdminService) ExportUserDetails(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	d, err := a.UserDetails(ctx, userID)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	p := d.Profile
	records := [][]string{
		{"Category", "Key", "Value"},
		{"Profile", "Username", p.Username},
		{"Profile", "Email", p.Email},
		{"Profile", "Balance", p.Balance.StringFixed(2)},
		{"Profile", "Invested", fmt.Sprintf("%t", p.Invested)},
		{"Profile", "Plan", p.PlanID},
		{"Profile", "Registration Date", p.CreatedAt.In(a.location).Format(time.DateTime)},
		{},
		{"Type", "Date", "Amount"},
	}
	for _, e := range d.Earnings {
		records = append(records, []string{"Earning", e.CreatedAt.In(a.location).Format(time.DateTime), e.Amount.StringFixed(2)})
	}
	records = append(records, []string{}, []string{"Type", "Date", "Amount", "Status"})
	for _, wd := range d.Withdrawals {
		records = append(records, []string{
			"Withdrawal", wd.CreatedAt.In(a.location).Format(time.DateTime), wd.Amount.StringFixed(2), string(wd.Status),
		})
	}
	if writeErr := cw.WriteAll(records); writeErr != nil {
		return fmt.Errorf("exporting user details: %s", writeErr.Error())
	}
	return nil
}

// DeleteUser удаляет профиль и учетную запись пользователя. Связанные начисления и выводы удаляются каскадно.
func (a *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	// удаляются только инвесторы: учетная запись без профиля (администратор) не трогается.
	if _, err := a.profileRepo.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	// профиль удаляется каскадом тем же запросом.
	if err := a.identity.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

type WithdrawalListItem struct {
	domain.Withdrawal
	Username string
}

// Withdrawals выборка заявок на вывод с именами пользователей. Пустой status означает все статусы.
func (a *AdminService) Withdrawals(
	ctx context.Context,
	status domain.WithdrawalStatus,
	limit uint,
) ([]WithdrawalListItem, error) {
	ws, err := a.withdrawalRepo.List(ctx, repoargs.ListWithdrawals{Status: status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing withdrawals: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.UserID)
	}
	names, err := a.profileRepo.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing withdrawals: %w", err)
	}
	res := make([]WithdrawalListItem, len(ws))
	for i, w := range ws {
		res[i] = WithdrawalListItem{Withdrawal: w, Username: names[w.UserID]}
	}
	return res, nil
}
