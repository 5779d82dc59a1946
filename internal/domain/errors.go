package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")

	ErrUnknownPlan           = errors.New("unknown investment plan")
	ErrNoApprovedSubmission  = errors.New("no approved payment found for phone number")
	ErrSubmissionAlreadyUsed = errors.New("approved payment is already linked to an account")
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrDuplicateEmail        = errors.New("an account with this email already exists")
	ErrInvalidTransition     = errors.New("status transition is not allowed")
	ErrReferralLock          = errors.New("you must refer 2 users to continue withdrawing")
	ErrPayoutMethodMissing   = errors.New("withdrawal method is not set up")
	ErrAccrualInProgress     = errors.New("daily accrual is already running")
)

// ValidationError ошибка формата входных данных. Возникает до любых побочных эффектов.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
