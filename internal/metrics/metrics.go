// Package metrics счетчики prometheus для HTTP слоя и бизнес событий.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "envo"

// Registry реестр метрик приложения, независимый от prometheus.DefaultRegisterer.
type Registry struct {
	reg *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	alerts          *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	earningsPaid    prometheus.Counter
	withdrawalsReqs prometheus.Counter
	emails          *prometheus.CounterVec
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operator_alerts_total",
			Help:      "Operator alerts raised by source.",
		}, []string{"source"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submissions",
			Name:      "decisions_total",
			Help:      "Payment submission decisions.",
		}, []string{"decision"}),
		earningsPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accrual",
			Name:      "earnings_paid_total",
			Help:      "Daily earnings credited.",
		}),
		withdrawalsReqs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "withdrawals",
			Name:      "requested_total",
			Help:      "Withdrawal requests accepted.",
		}),
		emails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "email",
			Name:      "sent_total",
			Help:      "Welcome emails by delivery result.",
		}, []string{"result"}),
	}
	r.reg.MustRegister(
		r.httpRequests,
		r.httpDuration,
		r.alerts,
		r.decisions,
		r.earningsPaid,
		r.withdrawalsReqs,
		r.emails,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return r
}

// Handler отдает метрики реестра для GET /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) AlertRaised(source string) {
	r.alerts.WithLabelValues(source).Inc()
}

func (r *Registry) SubmissionDecided(decision string) {
	r.decisions.WithLabelValues(decision).Inc()
}

func (r *Registry) EarningsPaid(count int) {
	r.earningsPaid.Add(float64(count))
}

func (r *Registry) WithdrawalRequested() {
	r.withdrawalsReqs.Inc()
}

// EmailSent результат доставки письма: ok=false для неудачной попытки.
func (r *Registry) EmailSent(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	r.emails.WithLabelValues(result).Inc()
}
