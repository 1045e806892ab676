// Package client sends API calls through a chain of request and response hooks.
package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"assetdesk/apperrors"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

// Call describes one API call relative to the client's base URL.
// Anonymous calls never carry a bearer token and never tear down the session.
type Call struct {
	Method    string
	Path      string
	Query     url.Values
	Body      interface{}
	Anonymous bool
}

// RequestHook may mutate the outgoing request. A non-nil error aborts the call.
type RequestHook func(req *http.Request, call *Call) error

// ResponseHook inspects a received response. The first non-nil error is
// returned by Send and the remaining hooks are skipped.
type ResponseHook func(res *http.Response, call *Call) error

type Client struct {
	baseURL       string
	httpClient    *http.Client
	requestHooks  []RequestHook
	responseHooks []ResponseHook
	logger        *zap.Logger
}

type Option func(*Client)

func WithRequestHook(hook RequestHook) Option {
	return func(c *Client) {
		c.requestHooks = append(c.requestHooks, hook)
	}
}

func WithResponseHook(hook ResponseHook) Option {
	return func(c *Client) {
		c.responseHooks = append(c.responseHooks, hook)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func New(baseURL string, transport http.RoundTripper, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Transport: transport, Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send performs call and decodes a successful JSON body into out (which may be nil).
// Failures are *apperrors.HTTPError or *apperrors.NetworkError.
func (c *Client) Send(ctx context.Context, call *Call, out interface{}) error {
	req, err := c.newRequest(ctx, call)
	if err != nil {
		return err
	}
	for _, hook := range c.requestHooks {
		if err := hook(req, call); err != nil {
			return err
		}
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("api call failed", zap.String("method", call.Method), zap.String("path", call.Path), zap.Error(err))
		return &apperrors.NetworkError{Cause: err}
	}
	defer res.Body.Close()

	c.logger.Debug("api call",
		zap.String("method", call.Method),
		zap.String("path", call.Path),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	for _, hook := range c.responseHooks {
		if err := hook(res, call); err != nil {
			return err
		}
	}

	if res.StatusCode >= http.StatusBadRequest {
		return classifyResponse(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &apperrors.HTTPError{
			Kind:    apperrors.ErrUnexpectedStatus,
			Status:  res.StatusCode,
			Message: "malformed response body",
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, call *Call) (*http.Request, error) {
	target := c.baseURL + call.Path
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// classifyResponse turns a failing response into an HTTPError, taking the
// message from a {"message": ...} body when there is one.
func classifyResponse(res *http.Response) *apperrors.HTTPError {
	var body struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(res.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			body.Message = strings.TrimSpace(string(raw))
		}
	}
	return apperrors.Classify(res.StatusCode, body.Message)
}
