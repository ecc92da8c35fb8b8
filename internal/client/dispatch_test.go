package client_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/client"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// recordedRequest captures what actually went over the wire.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// newTestClient starts an httptest server running handler and returns a
// client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*client.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(&ledgerly.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	return c, server
}

func recordingHandler(record *recordedRequest, statusCode int, body string, headers map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record.Method = r.Method
		record.Path = r.URL.Path
		record.Query = r.URL.RawQuery
		record.Header = r.Header.Clone()
		record.Body, _ = io.ReadAll(r.Body)

		for key, value := range headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_New(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		assert.ErrorIs(t, err, ledgerly.ErrConfigRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&ledgerly.Config{})
		assert.ErrorIs(t, err, ledgerly.ErrAPIKeyRequired)
		assert.True(t, ledgerly.IsConfigurationError(err))
	})

	t.Run("invalid cache config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&ledgerly.Config{
			APIKey: "k",
			Cache:  &ledgerly.CacheConfig{Type: "bogus"},
		})
		assert.ErrorIs(t, err, ledgerly.ErrUnsupportedCache)
	})
}

func TestSend_RequestShape(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK, `{"id":"cust_1"}`, nil))

	_, err := c.Send(context.Background(), http.MethodPost, "customers/{id}/notes",
		map[string]interface{}{"id": "cust_1", "limit": 5},
		map[string]string{"text": "hello"},
		map[string]string{"X-Request-Id": "req-42", "Content-Type": "text/plain"},
	)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, record.Method)
	assert.Equal(t, "/v2.1/customers/cust_1/notes", record.Path)
	assert.Equal(t, "limit=5", record.Query)
	assert.Equal(t, "req-42", record.Header.Get("X-Request-Id"))
	assert.Equal(t, "test-key", record.Header.Get("X-Api-Key"))
	assert.JSONEq(t, `{"text":"hello"}`, string(record.Body))

	// The wire format is always JSON, whatever the caller asked for.
	assert.Equal(t, "application/json", record.Header.Get("Content-Type"))
}

func TestSend_EmptyPayloadIsEmptyObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload interface{}
	}{
		{name: "nil payload", payload: nil},
		{name: "nil typed pointer", payload: (*ledgerly.CustomerRequest)(nil)},
		{name: "empty slice", payload: []string{}},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var record recordedRequest

			c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK, `{}`, nil))

			_, err := c.Send(context.Background(), http.MethodPost, "customers", nil, testCase.payload, nil)
			require.NoError(t, err)
			assert.Equal(t, "{}", string(record.Body))
		})
	}
}

func TestSend_HeadAndDeleteReturnNoResource(t *testing.T) {
	t.Parallel()

	// Body is deliberately present to show it is never resolved.
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"cust_1","email":"x@example.com"}`))
	})

	err := c.Delete(context.Background(), "customers/{id}", map[string]interface{}{"id": "cust_1"})
	require.NoError(t, err)

	err = c.Head(context.Background(), "customers/{id}", map[string]interface{}{"id": "cust_1"})
	require.NoError(t, err)

	resource, err := c.Send(context.Background(), http.MethodDelete, "customers/{id}",
		map[string]interface{}{"id": "cust_1"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, resource)
}

func TestSend_LocationHeaderDrivesTyping(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/v2.1/bank-accounts/abc123")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc123","last4":"6789"}`))
	})

	// The request path alone would not identify the created resource.
	resource, err := c.Post(context.Background(), "tokens/{token}/instrument",
		map[string]interface{}{"token": "tok_1"}, nil)
	require.NoError(t, err)

	account, ok := resource.(*ledgerly.BankAccount)
	require.True(t, ok)
	assert.Equal(t, "abc123", account.ID)
	assert.Equal(t, "6789", account.Last4)
}

func TestSend_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "404",
			statusCode: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ledgerly.IsNotFound(err))
			},
		},
		{
			name:       "422 with details",
			statusCode: http.StatusUnprocessableEntity,
			body:       `{"details":[{"field":"email","error":"invalid"}]}`,
			check: func(t *testing.T, err error) {
				t.Helper()

				unprocessable := &ledgerly.UnprocessableEntityError{}
				require.ErrorAs(t, err, &unprocessable)
				require.Len(t, unprocessable.Details, 1)
				assert.Equal(t, "email", unprocessable.Details[0].Field)
			},
		},
		{
			name:       "500",
			statusCode: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ledgerly.IsServerError(err))
			},
		},
		{
			name:       "403",
			statusCode: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, ledgerly.IsClientError(err))
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.statusCode)
				_, _ = w.Write([]byte(testCase.body))
			})

			_, err := c.Get(context.Background(), "customers/{id}", map[string]interface{}{"id": "x"})
			require.Error(t, err)
			testCase.check(t, err)
		})
	}
}

func TestSend_TransportErrorSurfacesUnchanged(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	c, err := client.New(&ledgerly.Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "customers", nil)
	require.Error(t, err)
	assert.True(t, ledgerly.IsTransportError(err))
}

func TestSend_CustomMiddlewareRunsAfterBuiltins(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	stamp := ledgerly.MiddlewareFunc(func(ctx context.Context, req *ledgerly.Request, next ledgerly.Next) (*ledgerly.Response, error) {
		// Base URI and auth links have already run.
		req.Header().Set("X-Seen-Url", req.URL)

		return next(ctx, req)
	})

	server := httptest.NewServer(recordingHandler(&record, http.StatusOK, `{}`, nil))
	t.Cleanup(server.Close)

	c, err := client.New(&ledgerly.Config{
		APIKey:      "k",
		BaseURL:     server.URL,
		Middlewares: []ledgerly.Middleware{stamp},
	})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "plans", nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/v2.1/plans", record.Header.Get("X-Seen-Url"))
}

func TestSend_CachedGET(t *testing.T) {
	t.Parallel()

	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"plan_1","name":"Pro"}`))
	}))
	t.Cleanup(server.Close)

	c, err := client.New(&ledgerly.Config{
		APIKey:  "k",
		BaseURL: server.URL,
		Cache:   ledgerly.DefaultCacheConfig(),
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		plan, err := c.Plans().Get(context.Background(), "plan_1")
		require.NoError(t, err)
		assert.Equal(t, "Pro", plan.Name)
	}

	assert.Equal(t, 1, calls)
}

func TestSend_ConcurrentRequests(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Echo the requested plan ID back so each goroutine can verify it
		// got its own response.
		id := strings.TrimPrefix(r.URL.Path, "/v2.1/plans/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + id + `","name":"Starter"}`))
	})

	const workers = 16

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			id := fmt.Sprintf("plan_%d", n)

			plan, err := c.Plans().Get(context.Background(), id)
			if err != nil {
				errs <- err

				return
			}

			if plan.ID != id {
				errs <- fmt.Errorf("got plan %s, want %s", plan.ID, id)
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
