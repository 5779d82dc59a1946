package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/sajidali832/envo4/internal/transport/mailer"
)

type Sender interface {
	SendWelcome(ctx context.Context, email, username string) mailer.Result
}

type AlertRaiser interface {
	Raise(ctx context.Context, source, subject string, err error)
}

type Observer interface {
	EmailSent(ok bool)
}
