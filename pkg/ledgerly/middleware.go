package ledgerly

import (
	"context"
	"net/http"
	"strings"
	"sync"
)

// Request represents one outgoing HTTP request. A fresh Request is built per
// call; requests are never shared across calls.
type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

// Header returns the request headers, allocating them on first use.
func (r *Request) Header() http.Header {
	if r.Headers == nil {
		r.Headers = make(http.Header)
	}

	return r.Headers
}

// Response represents a received HTTP response. It is read-only after
// receipt.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// Transport sends a fully-formed HTTP request and returns the raw response.
// Implementations must be safe for concurrent use; the shipped implementation
// lives in internal/http and a test implementation may return canned
// responses.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Next invokes the remainder of a middleware chain.
type Next func(ctx context.Context, req *Request) (*Response, error)

// Middleware is one composable link in the request chain. A link may inspect
// or modify the request before delegating to next, inspect or modify the
// response after next returns, or short-circuit by returning a response
// without delegating.
type Middleware interface {
	Handle(ctx context.Context, req *Request, next Next) (*Response, error)
}

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc func(ctx context.Context, req *Request, next Next) (*Response, error)

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx context.Context, req *Request, next Next) (*Response, error) {
	return f(ctx, req, next)
}

// Chain is an ordered list of middleware links ending in a terminal transport
// call. Links run in attach order: the first attached link observes the
// request first and the response last.
type Chain struct {
	links []Middleware
}

// NewChain creates a chain from the given links.
func NewChain(links ...Middleware) *Chain {
	return &Chain{links: links}
}

// Attach appends a link to the chain. Attaching after Then has composed the
// chain has no effect on the composed callable.
func (c *Chain) Attach(link Middleware) {
	c.links = append(c.links, link)
}

// Len returns the number of attached links.
func (c *Chain) Len() int {
	return len(c.links)
}

// Then composes the chain into a single callable ending in terminal. The
// composition is iterative and built once; the chain is not consulted again
// afterwards.
func (c *Chain) Then(terminal Next) Next {
	if terminal == nil {
		return func(ctx context.Context, req *Request) (*Response, error) {
			return nil, ErrNoTerminalLink
		}
	}

	composed := terminal
	for i := len(c.links) - 1; i >= 0; i-- {
		link := c.links[i]
		inner := composed
		composed = func(ctx context.Context, req *Request) (*Response, error) {
			return link.Handle(ctx, req, inner)
		}
	}

	return composed
}

// TransportLink wraps a Transport as the terminal link of a chain.
func TransportLink(transport Transport) Next {
	return transport.Send
}

// BaseURIMiddleware rewrites a relative request URL to be absolute against
// the configured base URL and API version path segment. Absolute URLs pass
// through untouched so Location-derived follow-ups keep working.
func BaseURIMiddleware(baseURL, version string) Middleware {
	prefix := strings.TrimSuffix(baseURL, "/")
	if version != "" {
		prefix += "/" + strings.Trim(version, "/")
	}

	return MiddlewareFunc(func(ctx context.Context, req *Request, next Next) (*Response, error) {
		if !strings.Contains(req.URL, "://") {
			req.URL = prefix + "/" + strings.TrimPrefix(req.URL, "/")
		}

		return next(ctx, req)
	})
}

// APIKeyMiddleware injects the API key into every outgoing request.
func APIKeyMiddleware(apiKey string) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *Request, next Next) (*Response, error) {
		req.Header().Set("X-Api-Key", apiKey)

		return next(ctx, req)
	})
}

// HeaderMiddleware sets fixed headers on every outgoing request.
func HeaderMiddleware(headers map[string]string) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *Request, next Next) (*Response, error) {
		for key, value := range headers {
			req.Header().Set(key, value)
		}

		return next(ctx, req)
	})
}

// LoggingMiddleware logs requests and responses at debug level.
func LoggingMiddleware(logger Logger) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *Request, next Next) (*Response, error) {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})

		resp, err := next(ctx, req)

		fields := map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		}
		if err != nil {
			fields["error"] = err.Error()
			logger.Error("API Response Error", fields)
		} else {
			fields["status_code"] = resp.StatusCode
			logger.Debug("API Response", fields)
		}

		return resp, err
	})
}

// HistoryEntry is one recorded request/response summary.
type HistoryEntry struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

// HistoryMiddleware records a bounded ring of request/response summaries for
// debugging. It is an example of the chain's extension point and is never
// attached by default.
type HistoryMiddleware struct {
	mu      sync.Mutex
	max     int
	entries []HistoryEntry
}

// NewHistoryMiddleware creates a history recorder keeping at most max
// entries.
func NewHistoryMiddleware(max int) *HistoryMiddleware {
	return &HistoryMiddleware{max: max}
}

// Handle implements Middleware.
func (h *HistoryMiddleware) Handle(ctx context.Context, req *Request, next Next) (*Response, error) {
	resp, err := next(ctx, req)

	entry := HistoryEntry{Method: req.Method, URL: req.URL, Err: err}
	if resp != nil {
		entry.StatusCode = resp.StatusCode
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.mu.Unlock()

	return resp, err
}

// Entries returns a copy of the recorded history, oldest first.
func (h *HistoryMiddleware) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]HistoryEntry, len(h.entries))
	copy(entries, h.entries)

	return entries
}
