package statusclient

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultInterval = 5 * time.Second
	DefaultTimeout  = 10 * time.Minute
)

type Client interface {
	GetStatus(ctx context.Context, phone string) (*Status, error)
}

// Watcher опрашивает статус заявки, пока администратор не примет решение.
type Watcher struct {
	client   Client
	interval time.Duration
	timeout  time.Duration
	// OnPoll вызывается после каждого опроса. Ошибка опроса передается, но ожидание не прерывает.
	OnPoll func(state State, remaining time.Duration, err error)
}

func NewWatcher(client Client, interval, timeout time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Watcher{client: client, interval: interval, timeout: timeout}
}

// Watch возвращает итоговое состояние approved или rejected. По истечении таймаута возвращает
// StatePending и ErrTimeout, при отмене ctx его ошибку.
func (w *Watcher) Watch(ctx context.Context, phone string) (State, error) {
	deadline := time.Now().Add(w.timeout)
	watchCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	state := StatePending
	for {
		delay := w.interval
		status, err := w.client.GetStatus(watchCtx, phone)
		var tooMany *TooManyRequestError
		if err == nil {
			state = status.Status
		} else if errors.As(err, &tooMany) {
			delay = max(delay, tooMany.RetryAfter)
		}
		if w.OnPoll != nil {
			w.OnPoll(state, time.Until(deadline), err)
		}
		if state.Final() {
			return state, nil
		}

		select {
		case <-watchCtx.Done():
			if ctx.Err() != nil {
				return state, ctx.Err()
			}
			return StatePending, ErrTimeout
		case <-time.After(delay):
		}
	}
}
