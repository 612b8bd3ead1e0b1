// Package rest implements the request/response channel to the Central API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kleeedolinux/central.go/config"
	"github.com/kleeedolinux/central.go/debug"
	"github.com/kleeedolinux/central.go/internal/metrics"
	"github.com/kleeedolinux/central.go/model"
)

// InterceptorHandle identifies a registered unauthorized handler.
type InterceptorHandle int

type interceptor struct {
	handle InterceptorHandle
	fn     func(status int)
}

type Client struct {
	mu            sync.RWMutex
	baseURL       string
	headers       http.Header
	token         string
	locale        string
	authenticated bool

	interceptors []interceptor
	nextHandle   InterceptorHandle

	httpClient *http.Client
	logger     zerolog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its Timeout is left as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(cfg config.Config, opts ...ClientOption) *Client {
	cfg = cfg.WithDefaults()

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     debug.Logger("rest"),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.setup(cfg)
	return c
}

func (c *Client) setup(cfg config.Config) {
	c.baseURL = cfg.BaseURL()
	c.locale = cfg.Locale
	c.headers = make(http.Header)
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")
	c.headers.Set("Accept-Language", cfg.Locale)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetLocale changes Accept-Language for requests started after the call.
func (c *Client) SetLocale(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.locale = locale
	c.headers.Set("Accept-Language", locale)
}

func (c *Client) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.locale
}

// SetToken sets the bearer token sent with requests started after the call.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.headers.Set("Authorization", "Bearer "+token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.authenticated
}

func (c *Client) acceptToken(token string) {
	c.SetToken(token)

	c.mu.Lock()
	c.authenticated = true
	c.mu.Unlock()
}

// OnUnauthorized registers handler to run whenever a response fails with 401.
func (c *Client) OnUnauthorized(handler func()) InterceptorHandle {
	if handler == nil {
		panic("rest: nil unauthorized handler")
	}

	return c.use(func(status int) {
		if status == http.StatusUnauthorized {
			handler()
		}
	})
}

// EjectOnUnauthorized removes exactly the handler registered under h.
func (c *Client) EjectOnUnauthorized(h InterceptorHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, ic := range c.interceptors {
		if ic.handle == h {
			c.interceptors = append(c.interceptors[:i:i], c.interceptors[i+1:]...)
			return
		}
	}
}

func (c *Client) use(fn func(status int)) InterceptorHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.nextHandle
	c.nextHandle++
	c.interceptors = append(c.interceptors, interceptor{handle: h, fn: fn})
	return h
}

func (c *Client) intercept(status int) {
	c.mu.RLock()
	chain := make([]interceptor, len(c.interceptors))
	copy(chain, c.interceptors)
	c.mu.RUnlock()

	if status == http.StatusUnauthorized {
		c.logger.Debug().Int("handlers", len(chain)).Msg("unauthorized response")
	}

	for _, ic := range chain {
		ic.fn(status)
	}
}

type remoteEnvelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func failure[T any](status int, statusText, message string, data json.RawMessage) model.Response[T] {
	return model.Response[T]{
		Success: false,
		Message: message,
		Response: &model.HTTPStatus{
			Status:     status,
			StatusText: statusText,
			Data:       data,
		},
	}
}

func rawJSON(body []byte) json.RawMessage {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}

// do performs one round trip and normalizes every outcome into the envelope.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) model.Response[T] {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return failure[T](http.StatusInternalServerError, "client error", err.Error(), nil)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		metrics.ObserveHTTP(method, http.StatusRequestTimeout)
		return failure[T](http.StatusRequestTimeout, "request timeout", err.Error(), nil)
	}
	defer resp.Body.Close()

	metrics.ObserveHTTP(method, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T](resp.StatusCode, http.StatusText(resp.StatusCode), fmt.Sprintf("read response: %v", err), nil)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.intercept(resp.StatusCode)

		var env remoteEnvelope[json.RawMessage]
		message := http.StatusText(resp.StatusCode)
		if json.Unmarshal(payload, &env) == nil && env.Message != "" {
			message = env.Message
		}
		return failure[T](resp.StatusCode, http.StatusText(resp.StatusCode), message, rawJSON(payload))
	}

	c.intercept(resp.StatusCode)

	var env remoteEnvelope[T]
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, &env); err != nil {
			return failure[T](resp.StatusCode, http.StatusText(resp.StatusCode), fmt.Sprintf("decode response: %v", err), rawJSON(payload))
		}
	}

	return model.Response[T]{
		Success: env.Success == nil || *env.Success,
		Message: env.Message,
		Data:    env.Data,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	c.mu.RUnlock()

	return req, nil
}

func resourcePath(base, id string, rest ...string) string {
	p := base + "/" + url.PathEscape(id)
	for _, seg := range rest {
		p += "/" + seg
	}
	return p
}

func listQuery(opts model.ListOptions) url.Values {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", fmt.Sprint(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", fmt.Sprint(opts.Offset))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	return q
}
