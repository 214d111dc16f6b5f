package request

import (
	"context"
	"io"
	"net/http"
	"time"
)

// RequestOptions holds the settings applied to a single request.
type RequestOptions struct {
	Timeout time.Duration
	Body    io.Reader
	Headers map[string]string
	Ctx     context.Context
	Client  *http.Client
}

// RequestOption applies a setting to RequestOptions.
type RequestOption func(*RequestOptions)

// WithTimeout sets a deadline for the request.
func WithTimeout(seconds int) RequestOption {
	return func(o *RequestOptions) {
		o.Timeout = time.Duration(seconds) * time.Second
	}
}

// WithBody sets the request body.
func WithBody(body io.Reader) RequestOption {
	return func(o *RequestOptions) {
		o.Body = body
	}
}

// WithHeader adds a single header to the request.
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithHeaders adds multiple headers at once.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		for k, v := range headers {
			o.Headers[k] = v
		}
	}
}

// WithContext sets the context used for the request.
func WithContext(ctx context.Context) RequestOption {
	return func(o *RequestOptions) {
		o.Ctx = ctx
	}
}

// WithClient reuses an existing http.Client instead of building one per call.
func WithClient(client *http.Client) RequestOption {
	return func(o *RequestOptions) {
		o.Client = client
	}
}

// Do executes an HTTP request with the given options.
func Do(method, url string, opts ...RequestOption) (*http.Response, error) {
	options := &RequestOptions{
		Timeout: 30 * time.Second,
		Ctx:     context.Background(),
		Body:    nil,
	}

	for _, opt := range opts {
		opt(options)
	}

	client := options.Client
	if client == nil {
		client = &http.Client{Timeout: options.Timeout}
	}

	req, err := http.NewRequestWithContext(options.Ctx, method, url, options.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range options.Headers {
		req.Header.Set(k, v)
	}

	return client.Do(req)
}
