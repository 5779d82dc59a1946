// Package mailer отправка писем через Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	_ "embed" // шаблон письма встраивается в бинарник.
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://api.resend.com"
	routeEmails    = "/emails"

	welcomeSubject     = "Welcome to ENVO EARN - Your Account is Ready!"
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBody    = 1 << 16
)

//go:embed welcome.html
var welcomeHTML string

var welcomeTmpl = template.Must(template.New("welcome").Parse(welcomeHTML))

// Result итог отправки. Ошибки не возвращаются отдельно, а складываются в Error.
type Result struct {
	Success bool
	ID      string
	Error   string
}

type Config struct {
	APIKey       string
	From         string
	DashboardURL string
	DailyEarning decimal.Decimal
	// BaseURL адрес API, по умолчанию DefaultBaseURL.
	BaseURL string
}

type Resend struct {
	cfg        Config
	httpClient *http.Client
	now        func() time.Time
}

func New(cfg Config) (*Resend, error) {
	if cfg.APIKey == "" || cfg.From == "" {
		return nil, errors.New("mailer: api key and sender are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Resend{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		now:        time.Now,
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

type welcomeData struct {
	Username     string
	DashboardURL string
	DailyEarning string
	Year         int
}

// SendWelcome отправляет приветственное письмо зарегистрированному пользователю.
func (r *Resend) SendWelcome(ctx context.Context, email, username string) Result {
	var html bytes.Buffer
	err := welcomeTmpl.Execute(&html, welcomeData{
		Username:     username,
		DashboardURL: r.cfg.DashboardURL,
		DailyEarning: r.cfg.DailyEarning.String(),
		Year:         r.now().Year(),
	})
	if err != nil {
		return Result{Error: errors.Wrap(err, "render welcome email").Error()}
	}

	id, err := r.send(ctx, sendRequest{
		From:    r.cfg.From,
		To:      []string{email},
		Subject: welcomeSubject,
		HTML:    html.String(),
	})
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Success: true, ID: id}
}

//nolint:nonamedreturns
func (r *Resend) send(ctx context.Context, payload sendRequest) (id string, err error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal email")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+routeEmails, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	var parsed sendResponse
	// тело ошибки может быть не JSON, тогда остается только код статуса.
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK {
		if parsed.Message != "" {
			return "", errors.Errorf("resend: status %d: %s", resp.StatusCode, parsed.Message)
		}
		return "", errors.Errorf("resend: status %d", resp.StatusCode)
	}
	if parsed.ID == "" {
		return "", errors.New("resend: empty message id")
	}
	return parsed.ID, nil
}
