// Package testutils запросы к gin роутеру в тестах хендлеров.
package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers    http.Header
	remoteAddr string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через роутер без сети и возвращает ответ рекордера.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{headers: make(http.Header)}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, values := range options.headers {
		for _, v := range values {
			request.Header.Add(k, v)
		}
	}
	if options.remoteAddr != "" {
		request.RemoteAddr = options.remoteAddr
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)
	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers.Set(name, value)
	}
}

// WithBearer заголовок Authorization с JWT токеном.
func WithBearer(token string) func(*RequestOptions) {
	return WithHeader("Authorization", "Bearer "+token)
}

func WithContentType(contentType string) func(*RequestOptions) {
	return WithHeader("Content-Type", contentType)
}

// WithRemoteAddr адрес клиента, по нему работает ограничение частоты запросов.
func WithRemoteAddr(addr string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.remoteAddr = addr
	}
}
