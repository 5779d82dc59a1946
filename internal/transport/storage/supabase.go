// Package storage хранилища скриншотов оплаты: Supabase Storage или локальная директория.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	routeObject       = "/storage/v1/object/%s/%s"
	routeBucketObject = "/storage/v1/object/%s"
	routePublicObject = "/storage/v1/object/public/%s/%s"

	defaultHTTPTimeout = 30 * time.Second
	// maxErrorBody сколько байт тела ошибки попадает в текст ошибки.
	maxErrorBody = 1 << 10
)

// Supabase клиент Supabase Storage REST API. Работает с одним публичным бакетом.
type Supabase struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

func NewSupabase(baseURL, serviceKey, bucket string) (*Supabase, error) {
	if baseURL == "" || serviceKey == "" || bucket == "" {
		return nil, errors.New("supabase storage: url, service key and bucket are required")
	}
	return &Supabase{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}, nil
}

// Upload загружает объект по пути path и возвращает его публичный URL. Существующий объект не
// перезаписывается.
func (s *Supabase) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	reqURL := s.baseURL + fmt.Sprintf(routeObject, s.bucket, escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "create upload request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	if err = s.do(req); err != nil {
		return "", errors.Wrapf(err, "upload %s", path)
	}
	return s.PublicURL(path), nil
}

// Delete удаляет объект. Отсутствие объекта ошибкой не считается.
func (s *Supabase) Delete(ctx context.Context, path string) error {
	body, err := json.Marshal(map[string][]string{"prefixes": {path}})
	if err != nil {
		return errors.Wrap(err, "marshal delete request")
	}
	reqURL := s.baseURL + fmt.Sprintf(routeBucketObject, s.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "create delete request")
	}
	req.Header.Set("Content-Type", "application/json")

	return errors.Wrapf(s.do(req), "delete %s", path)
}

func (s *Supabase) PublicURL(path string) string {
	return s.baseURL + fmt.Sprintf(routePublicObject, s.bucket, escapePath(path))
}

//nolint:nonamedreturns
func (s *Supabase) do(req *http.Request) (err error) {
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, doErr := s.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response")
		}
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var apiErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &apiErr) == nil {
		if apiErr.Message != "" {
			msg = apiErr.Message
		} else if apiErr.Error != "" {
			msg = apiErr.Error
		}
	}
	return NewStatusCodeError(resp.StatusCode, msg)
}

// escapePath экранирует сегменты пути, сохраняя разделители.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
