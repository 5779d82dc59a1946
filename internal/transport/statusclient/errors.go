package statusclient

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound = errors.New("submission not found")
	ErrTimeout  = errors.New("timed out waiting for decision")
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("too many requests, retry after %.f seconds", e.RetryAfter.Seconds())
}
