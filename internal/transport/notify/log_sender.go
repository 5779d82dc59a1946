package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sajidali832/envo4/internal/transport/mailer"
)

// LogSender заменяет почтовый сервис, когда ключ API не задан: письмо только пишется в лог.
type LogSender struct {
	l *logrus.Entry
}

func NewLogSender(l *logrus.Logger) *LogSender {
	return &LogSender{l: l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "log_sender",
	})}
}

func (s *LogSender) SendWelcome(_ context.Context, email, username string) mailer.Result {
	s.l.WithFields(logrus.Fields{
		"email":    email,
		"username": username,
	}).Warn("email delivery is not configured, welcome email skipped")
	return mailer.Result{Success: true}
}
