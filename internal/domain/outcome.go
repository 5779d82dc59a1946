package domain

import (
	"errors"
	"fmt"
)

// SideEffect имя второстепенного действия, которое сопровождает основной переход.
type SideEffect string

const (
	SideEffectReferralBonus    SideEffect = "referral_bonus"
	SideEffectReferralBackfill SideEffect = "referral_backfill"
	SideEffectProofDeletion    SideEffect = "proof_deletion"
	SideEffectWelcomeEmail     SideEffect = "welcome_email"
	SideEffectIdentityCleanup  SideEffect = "identity_cleanup"
	SideEffectDailyEarning     SideEffect = "daily_earning"
)

type SideEffectFailure struct {
	Effect SideEffect
	Err    error
}

func (f SideEffectFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Effect, f.Err.Error())
}

func (f SideEffectFailure) Unwrap() error {
	return f.Err
}

// Outcome результат операции, у которой основной переход уже зафиксирован. Пустой Failures означает
// полный успех, непустой - переход выполнен, но часть побочных эффектов не отработала.
type Outcome struct {
	Failures []SideEffectFailure
}

func (o *Outcome) Fail(effect SideEffect, err error) {
	o.Failures = append(o.Failures, SideEffectFailure{Effect: effect, Err: err})
}

// Degraded true если хотя бы один побочный эффект не выполнен.
func (o *Outcome) Degraded() bool {
	return o != nil && len(o.Failures) > 0
}

// Err объединяет ошибки побочных эффектов. Возвращает nil при полном успехе.
func (o *Outcome) Err() error {
	if !o.Degraded() {
		return nil
	}
	errs := make([]error, len(o.Failures))
	for i, f := range o.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// FailedEffects список имен невыполненных эффектов, удобен для ответа API.
func (o *Outcome) FailedEffects() []string {
	if o == nil {
		return nil
	}
	res := make([]string, len(o.Failures))
	for i, f := range o.Failures {
		res[i] = string(f.Effect)
	}
	return res
}
