// Package http provides the shipped Transport implementation for the
// Ledgerly client, built on hashicorp/go-retryablehttp. Retries are a
// transport concern and stay disabled unless configured; the dispatch
// pipeline above it never retries a call.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/constants"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// Client sends fully-formed requests over HTTP. It is safe for concurrent
// use.
type Client struct {
	retryClient *retryablehttp.Client
	userAgent   string
	logger      ledgerly.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets a logger for transport-level retry messages.
func WithLogger(logger ledgerly.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for transient failures
// (connection errors, 429, and 5xx).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying standard HTTP client, e.g. for
// custom TLS configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient = httpClient
	}
}

// NewClient creates a transport. Without WithRetryConfig every request is
// attempted exactly once.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		retryClient: retryClient,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		client.retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// Send implements ledgerly.Transport. Network-level failures are wrapped in
// a ledgerly.TransportError; any HTTP response, whatever its status, is
// returned as-is for the pipeline's status mapper.
func (c *Client) Send(ctx context.Context, req *ledgerly.Request) (*ledgerly.Response, error) {
	if req == nil {
		return nil, ledgerly.ErrNilRequest
	}

	var body interface{}
	if len(req.Body) > 0 {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &ledgerly.TransportError{Err: err}
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, &ledgerly.TransportError{Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ledgerly.TransportError{Err: err}
	}

	return &ledgerly.Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// leveledLogger adapts ledgerly.Logger to retryablehttp's LeveledLogger.
type leveledLogger struct {
	logger ledgerly.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromPairs(keysAndValues))
}

func fieldsFromPairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
