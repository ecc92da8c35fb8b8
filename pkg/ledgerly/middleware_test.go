package ledgerly_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLink tags the request on the way in and the response on the way
// out so tests can observe execution order.
func recordingLink(name string, log *[]string) ledgerly.Middleware {
	return ledgerly.MiddlewareFunc(func(ctx context.Context, req *ledgerly.Request, next ledgerly.Next) (*ledgerly.Response, error) {
		*log = append(*log, name+" request")

		resp, err := next(ctx, req)

		*log = append(*log, name+" response")

		return resp, err
	})
}

func terminalReturning(resp *ledgerly.Response, log *[]string) ledgerly.Next {
	return func(ctx context.Context, req *ledgerly.Request) (*ledgerly.Response, error) {
		*log = append(*log, "terminal")

		return resp, nil
	}
}

func TestChain_ExecutionOrder(t *testing.T) {
	t.Parallel()

	var log []string

	chain := ledgerly.NewChain(
		recordingLink("A", &log),
		recordingLink("B", &log),
	)

	invoke := chain.Then(terminalReturning(&ledgerly.Response{StatusCode: 200}, &log))

	resp, err := invoke(context.Background(), &ledgerly.Request{Method: "GET", URL: "customers"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// A observes the request before B; the response passes back through B
	// before A.
	assert.Equal(t, []string{"A request", "B request", "terminal", "B response", "A response"}, log)
}

func TestChain_ShortCircuit(t *testing.T) {
	t.Parallel()

	canned := &ledgerly.Response{StatusCode: 204}

	shortCircuit := ledgerly.MiddlewareFunc(func(ctx context.Context, req *ledgerly.Request, next ledgerly.Next) (*ledgerly.Response, error) {
		return canned, nil
	})

	terminalCalled := false

	chain := ledgerly.NewChain(shortCircuit)
	invoke := chain.Then(func(ctx context.Context, req *ledgerly.Request) (*ledgerly.Response, error) {
		terminalCalled = true

		return &ledgerly.Response{StatusCode: 200}, nil
	})

	resp, err := invoke(context.Background(), &ledgerly.Request{Method: "GET", URL: "customers"})
	require.NoError(t, err)
	assert.Same(t, canned, resp)
	assert.False(t, terminalCalled)
}

func TestChain_AttachOrderMatchesExecutionOrder(t *testing.T) {
	t.Parallel()

	var log []string

	chain := ledgerly.NewChain()
	chain.Attach(recordingLink("first", &log))
	chain.Attach(recordingLink("second", &log))
	chain.Attach(recordingLink("third", &log))

	require.Equal(t, 3, chain.Len())

	invoke := chain.Then(terminalReturning(&ledgerly.Response{StatusCode: 200}, &log))

	_, err := invoke(context.Background(), &ledgerly.Request{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"first request", "second request", "third request",
		"terminal",
		"third response", "second response", "first response",
	}, log)
}

func TestChain_NoTerminalLink(t *testing.T) {
	t.Parallel()

	invoke := ledgerly.NewChain().Then(nil)

	_, err := invoke(context.Background(), &ledgerly.Request{})
	require.ErrorIs(t, err, ledgerly.ErrNoTerminalLink)
}

func TestBaseURIMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "relative path",
			url:      "customers/abc",
			expected: "https://api.example.com/v2.1/customers/abc",
		},
		{
			name:     "leading slash",
			url:      "/customers/abc",
			expected: "https://api.example.com/v2.1/customers/abc",
		},
		{
			name:     "absolute url untouched",
			url:      "https://elsewhere.example.com/v2.1/plans/p_1",
			expected: "https://elsewhere.example.com/v2.1/plans/p_1",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			link := ledgerly.BaseURIMiddleware("https://api.example.com/", "v2.1")

			var seen string

			_, err := link.Handle(context.Background(), &ledgerly.Request{URL: testCase.url},
				func(ctx context.Context, req *ledgerly.Request) (*ledgerly.Response, error) {
					seen = req.URL

					return &ledgerly.Response{StatusCode: 200}, nil
				})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, seen)
		})
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Parallel()

	link := ledgerly.APIKeyMiddleware("sk_live_secret")

	var seen http.Header

	_, err := link.Handle(context.Background(), &ledgerly.Request{URL: "customers"},
		func(ctx context.Context, req *ledgerly.Request) (*ledgerly.Response, error) {
			seen = req.Headers

			return &ledgerly.Response{StatusCode: 200}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "sk_live_secret", seen.Get("X-Api-Key"))
}

func TestHeaderMiddleware(t *testing.T) {
	t.Parallel()

	link := ledgerly.HeaderMiddleware(map[string]string{"X-Request-Source": "tests"})

	req := &ledgerly.Request{URL: "customers"}

	_, err := link.Handle(context.Background(), req,
		func(ctx context.Context, r *ledgerly.Request) (*ledgerly.Response, error) {
			return &ledgerly.Response{StatusCode: 200}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "tests", req.Headers.Get("X-Request-Source"))
}

func TestHistoryMiddleware(t *testing.T) {
	t.Parallel()

	history := ledgerly.NewHistoryMiddleware(2)

	invoke := ledgerly.NewChain(history).Then(func(ctx context.Context, req *ledgerly.Request) (*ledgerly.Response, error) {
		return &ledgerly.Response{StatusCode: 200}, nil
	})

	for _, url := range []string{"one", "two", "three"} {
		_, err := invoke(context.Background(), &ledgerly.Request{Method: "GET", URL: url})
		require.NoError(t, err)
	}

	entries := history.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[0].URL)
	assert.Equal(t, "three", entries[1].URL)
	assert.Equal(t, 200, entries[1].StatusCode)
}
