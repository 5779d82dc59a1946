// Package statusclient HTTP клиент статуса заявки об оплате и ожидание решения администратора.
package statusclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const RouteSubmissionStatus = "/api/submissions/status"

// Границы значения заголовка Retry-After в секундах.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 10 * time.Second
)

type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

func (s State) Final() bool {
	return s == StateApproved || s == StateRejected
}

type Status struct {
	ID        int64     `json:"id"`
	Status    State     `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// GetStatus статус последней заявки для номера phone. Возвращает ErrNotFound, TooManyRequestError
// или StatusCodeError для прочих ответов кроме http.StatusOK.
//
//nolint:nonamedreturns
func (c HTTPClient) GetStatus(ctx context.Context, phone string) (status *Status, err error) {
	reqURL := c.baseURL + RouteSubmissionStatus + "?phone=" + url.QueryEscape(phone)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, errors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response")
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	default:
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	if jsonErr := json.NewDecoder(resp.Body).Decode(&status); jsonErr != nil {
		return nil, errors.Wrap(jsonErr, "parse response")
	}
	return status, nil
}

func parseRetryAfter(v string) time.Duration {
	sec, err := strconv.Atoi(v)
	if err != nil || sec < minRetryAfter || sec > maxRetryAfter {
		return defaultRetryAfter
	}
	return time.Duration(sec) * time.Second
}
