// Package plans хранит каталог инвестиционных тарифов и числовые правила программы.
package plans

import (
	_ "embed" // дефолтный каталог встраивается в бинарник.
	"errors"
	"fmt"
	"os"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var defaultCatalog []byte

type Plan struct {
	ID            string
	Name          string
	Amount        decimal.Decimal
	DailyReturn   decimal.Decimal
	ReferralBonus decimal.Decimal
	TopTier       bool
}

// Rules числовые правила программы.
type Rules struct {
	InviteeBonus decimal.Decimal
	DailyEarning decimal.Decimal
	// MinWithdrawal минимальная сумма одной заявки на вывод.
	MinWithdrawal decimal.Decimal
	// LockAfterApproved кол-во одобренных выводов, после которого требуются рефералы.
	LockAfterApproved int64
	// LockRequiredReferrals кол-во рефералов со статусом Invested, снимающее блокировку.
	LockRequiredReferrals int64
}

type Catalog struct {
	Rules Rules
	plans []Plan
	byID  map[string]Plan
}

type rawPlan struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Amount        int64  `yaml:"amount"`
	DailyReturn   int64  `yaml:"daily_return"`
	ReferralBonus int64  `yaml:"referral_bonus"`
	TopTier       bool   `yaml:"top_tier"`
}

type rawCatalog struct {
	InviteeBonus   int64 `yaml:"invitee_bonus"`
	DailyEarning   int64 `yaml:"daily_earning"`
	MinWithdrawal  int64 `yaml:"min_withdrawal"`
	WithdrawalLock struct {
		ApprovedWithdrawals int64 `yaml:"approved_withdrawals"`
		RequiredReferrals   int64 `yaml:"required_referrals"`
	} `yaml:"withdrawal_lock"`
	Plans []rawPlan `yaml:"plans"`
}

// Default возвращает встроенный каталог.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Load читает каталог из файла path. Пустой path означает встроенный каталог.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plans file: %s", err.Error())
	}
	return Parse(data)
}

// Parse разбирает yaml каталога и проверяет его целостность.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse plans: %s", err.Error())
	}
	if len(raw.Plans) == 0 {
		return nil, errors.New("parse plans: catalog is empty")
	}

	c := &Catalog{
		Rules: Rules{
			InviteeBonus:          decimal.NewFromInt(raw.InviteeBonus),
			DailyEarning:          decimal.NewFromInt(raw.DailyEarning),
			MinWithdrawal:         decimal.NewFromInt(raw.MinWithdrawal),
			LockAfterApproved:     raw.WithdrawalLock.ApprovedWithdrawals,
			LockRequiredReferrals: raw.WithdrawalLock.RequiredReferrals,
		},
		plans: make([]Plan, 0, len(raw.Plans)),
		byID:  make(map[string]Plan, len(raw.Plans)),
	}
	for _, rp := range raw.Plans {
		if rp.ID == "" {
			return nil, errors.New("parse plans: plan without id")
		}
		if _, dup := c.byID[rp.ID]; dup {
			return nil, fmt.Errorf("parse plans: duplicate plan id %q", rp.ID)
		}
		p := Plan{
			ID:            rp.ID,
			Name:          rp.Name,
			Amount:        decimal.NewFromInt(rp.Amount),
			DailyReturn:   decimal.NewFromInt(rp.DailyReturn),
			ReferralBonus: decimal.NewFromInt(rp.ReferralBonus),
			TopTier:       rp.TopTier,
		}
		c.plans = append(c.plans, p)
		c.byID[p.ID] = p
	}
	return c, nil
}

// Get возвращает тариф по id или domain.ErrUnknownPlan.
func (c *Catalog) Get(id string) (Plan, error) {
	p, ok := c.byID[id]
	if !ok {
		return Plan{}, domain.ErrUnknownPlan
	}
	return p, nil
}

func (c *Catalog) All() []Plan {
	res := make([]Plan, len(c.plans))
	copy(res, c.plans)
	return res
}

// IsTopTier true для тарифа верхнего уровня. Неизвестный тариф верхним не считается.
func (c *Catalog) IsTopTier(id string) bool {
	p, ok := c.byID[id]
	return ok && p.TopTier
}

// ReferralBonus бонус пригласившему за приглашенного на тарифе planID. Для неизвестного тарифа
// используется наименьший бонус каталога.
func (c *Catalog) ReferralBonus(planID string) decimal.Decimal {
	if p, ok := c.byID[planID]; ok {
		return p.ReferralBonus
	}
	minBonus := c.plans[0].ReferralBonus
	for _, p := range c.plans[1:] {
		if p.ReferralBonus.LessThan(minBonus) {
			minBonus = p.ReferralBonus
		}
	}
	return minBonus
}
