// Команда envo-watch ждет решения администратора по заявке на оплату.
//
// Коды выхода: 0 заявка одобрена, 1 отклонена или ошибка, 2 решение не принято за отведенное время.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/logger"
	"github.com/sajidali832/envo4/internal/transport/statusclient"
)

const (
	exitApproved = 0
	exitRejected = 1
	exitTimeout  = 2
)

func main() {
	var (
		baseURL  string
		phone    string
		interval time.Duration
		timeout  time.Duration
	)
	flag.StringVar(&baseURL, "a", "http://localhost:8080", "service base address")
	flag.StringVar(&phone, "p", "", "account number used in the payment submission")
	flag.DurationVar(&interval, "i", statusclient.DefaultInterval, "poll interval")
	flag.DurationVar(&timeout, "t", statusclient.DefaultTimeout, "give up after")
	flag.Parse()

	l := logger.New(os.Stderr)
	if phone == "" {
		l.Error("phone is required (-p)")
		os.Exit(exitRejected)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := statusclient.NewWatcher(statusclient.New(baseURL), interval, timeout)
	watcher.OnPoll = func(state statusclient.State, remaining time.Duration, err error) {
		entry := l.WithFields(logrus.Fields{
			"state":     state,
			"remaining": remaining.Round(time.Second).String(),
		})
		if err != nil {
			entry.WithError(err).Warn("poll failed")
			return
		}
		entry.Info("polled")
	}

	state, err := watcher.Watch(ctx, phone)
	code := exitCode(l, state, err)
	stop()
	os.Exit(code)
}

func exitCode(l *logrus.Logger, state statusclient.State, err error) int {
	switch {
	case errors.Is(err, statusclient.ErrTimeout):
		l.Warn("no decision yet, check again later")
		return exitTimeout
	case err != nil:
		l.WithError(err).Error("watch submission")
		return exitRejected
	case state == statusclient.StateApproved:
		l.Info("payment approved, you can register now")
		return exitApproved
	default:
		l.Info("payment rejected")
		return exitRejected
	}
}
