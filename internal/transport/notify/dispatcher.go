// Package notify очередь фоновой отправки писем.
package notify

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull = errors.New("email queue is full")
	ErrStopped   = errors.New("email dispatcher is stopped")
)

const (
	alertSource = "email"

	defaultWorkers     uint = 2
	defaultQueueSize   uint = 256
	defaultMaxAttempts uint = 3
	defaultBaseDelay        = 2 * time.Second
	defaultSendTimeout      = 15 * time.Second
)

type welcomeJob struct {
	email    string
	username string
}

// Dispatcher принимает письма в буферизированную очередь и отправляет их пулом воркеров с повторами.
type Dispatcher struct {
	sender   Sender
	alerts   AlertRaiser
	observer Observer
	l        *logrus.Entry

	workers     uint
	maxAttempts uint
	baseDelay   time.Duration

	mu      sync.RWMutex
	queue   chan welcomeJob
	stopped bool
}

func New(sender Sender, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		l: l.WithFields(logrus.Fields{
			"component": "notify",
			"module":    "dispatcher",
		}),
		workers:     defaultWorkers,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		queue:       make(chan welcomeJob, defaultQueueSize),
	}
}

// SetWorkers кол-во параллельных отправителей. Вызывается до Run.
func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// SetQueueSize емкость очереди. Вызывается до Run, ноль оставляет емкость по умолчанию.
func (d *Dispatcher) SetQueueSize(size uint) *Dispatcher {
	if size > 0 {
		d.queue = make(chan welcomeJob, size)
	}
	return d
}

func (d *Dispatcher) SetRetry(maxAttempts uint, baseDelay time.Duration) *Dispatcher {
	if maxAttempts > 0 {
		d.maxAttempts = maxAttempts
	}
	d.baseDelay = baseDelay
	return d
}

// SetAlerts канал оповещений для писем, не доставленных после всех попыток.
func (d *Dispatcher) SetAlerts(alerts AlertRaiser) *Dispatcher {
	d.alerts = alerts
	return d
}

func (d *Dispatcher) SetObserver(observer Observer) *Dispatcher {
	d.observer = observer
	return d
}

// NotifyWelcome ставит приветственное письмо в очередь и сразу возвращается. Возвращает ErrQueueFull
// при переполнении очереди и ErrStopped после остановки.
func (d *Dispatcher) NotifyWelcome(_ context.Context, email, username string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- welcomeJob{email: email, username: username}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run запускает воркеров и блокируется до отмены ctx.
//
// Алгоритм работы:
//  1. Воркеры читают задания из общей очереди (fan-out).
//  2. Неудачная отправка повторяется до maxAttempts раз с экспоненциальной паузой и случайным разбросом.
//  3. После отмены ctx прием новых писем прекращается, уже принятые письма дорабатываются без повторов.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.WithFields(logrus.Fields{
		"workers":     d.workers,
		"maxAttempts": d.maxAttempts,
	}).Info("Starting")

	wg := new(sync.WaitGroup)
	wg.Add(int(d.workers)) //nolint:gosec
	for i := range d.workers {
		go d.worker(ctx, wg, i+1)
	}

	<-ctx.Done()
	d.l.Info("Got stop signal, draining queue...")

	d.mu.Lock()
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	wg.Wait()
	d.l.Info("Stopped")
}

func (d *Dispatcher) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint) {
	defer wg.Done()

	for job := range d.queue {
		d.deliver(ctx, workerID, job)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID uint, job welcomeJob) {
	l := d.l.WithFields(logrus.Fields{
		"worker": workerID,
		"email":  job.email,
	})
	// отправка не прерывается остановкой сервиса, только таймаутом.
	sendBase := context.WithoutCancel(ctx)

	var lastErr string
	for attempt := uint(1); attempt <= d.maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(sendBase, defaultSendTimeout)
		res := d.sender.SendWelcome(sendCtx, job.email, job.username)
		cancel()

		if d.observer != nil {
			d.observer.EmailSent(res.Success)
		}
		if res.Success {
			l.WithFields(logrus.Fields{"id": res.ID, "attempt": attempt}).Info("Welcome email sent")
			return
		}
		lastErr = res.Error
		l.WithField("attempt", attempt).WithError(errors.New(res.Error)).Warn("send welcome email")

		if attempt == d.maxAttempts || !wait(ctx, backoff(d.baseDelay, attempt)) {
			break
		}
	}

	l.Error("welcome email not delivered")
	if d.alerts != nil {
		d.alerts.Raise(sendBase, alertSource, job.email, errors.New(lastErr))
	}
}

// wait false если ctx отменен раньше, чем прошла пауза.
func wait(ctx context.Context, delay time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}

// backoff пауза перед попыткой attempt+1: base*2^(attempt-1) плюс до 50% случайного разброса.
func backoff(base time.Duration, attempt uint) time.Duration {
	if base <= 0 {
		return 0
	}
	delay := base << (attempt - 1)
	return delay + jitter(delay/2)
}

func jitter(maxJitter time.Duration) time.Duration {
	if maxJitter <= 0 {
		return 0
	}
	return rand.N(maxJitter) //nolint:gosec
}
