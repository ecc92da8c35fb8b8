package ledgerly_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFromResponse_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "success",
			statusCode: 200,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.NoError(t, err)
			},
		},
		{
			name:       "not found",
			statusCode: 404,
			check: func(t *testing.T, err error) {
				t.Helper()

				notFound := &ledgerly.NotFoundError{}
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, "customers/missing", notFound.Path)
			},
		},
		{
			name:       "unprocessable entity with details",
			statusCode: 422,
			body:       `{"details":[{"field":"email","error":"invalid"}]}`,
			check: func(t *testing.T, err error) {
				t.Helper()

				unprocessable := &ledgerly.UnprocessableEntityError{}
				require.ErrorAs(t, err, &unprocessable)
				require.Len(t, unprocessable.Details, 1)
				assert.Equal(t, "email", unprocessable.Details[0].Field)
				assert.Equal(t, "invalid", unprocessable.Details[0].Error)
			},
		},
		{
			name:       "unprocessable entity without details",
			statusCode: 422,
			body:       `{}`,
			check: func(t *testing.T, err error) {
				t.Helper()

				unprocessable := &ledgerly.UnprocessableEntityError{}
				require.ErrorAs(t, err, &unprocessable)
				assert.Empty(t, unprocessable.Details)
			},
		},
		{
			name:       "server error",
			statusCode: 503,
			check: func(t *testing.T, err error) {
				t.Helper()

				serverErr := &ledgerly.ServerError{}
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, 503, serverErr.StatusCode)
				assert.Equal(t, "Service Unavailable", serverErr.Reason)
			},
		},
		{
			name:       "client error",
			statusCode: 409,
			check: func(t *testing.T, err error) {
				t.Helper()

				clientErr := &ledgerly.ClientError{}
				require.ErrorAs(t, err, &clientErr)
				assert.Equal(t, 409, clientErr.StatusCode)
				assert.Equal(t, "Conflict", clientErr.Reason)
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resp := &ledgerly.Response{
				StatusCode: testCase.statusCode,
				Body:       []byte(testCase.body),
			}

			testCase.check(t, ledgerly.ErrorFromResponse(resp, "customers/missing"))
		})
	}
}

// Every status code in [100,599] maps to exactly one outcome, with 404 and
// 422 taking precedence over the generic ranges.
func TestErrorFromResponse_TotalAndExclusive(t *testing.T) {
	t.Parallel()

	for code := 100; code <= 599; code++ {
		err := ledgerly.ErrorFromResponse(&ledgerly.Response{StatusCode: code}, "p")

		outcomes := 0

		if err == nil {
			outcomes++
		}

		if ledgerly.IsNotFound(err) {
			outcomes++

			assert.Equal(t, 404, code)
		}

		if ledgerly.IsUnprocessableEntity(err) {
			outcomes++

			assert.Equal(t, 422, code)
		}

		if ledgerly.IsServerError(err) {
			outcomes++

			assert.GreaterOrEqual(t, code, 500)
		}

		if ledgerly.IsClientError(err) {
			outcomes++

			assert.GreaterOrEqual(t, code, 400)
			assert.Less(t, code, 500)
			assert.NotEqual(t, 404, code)
			assert.NotEqual(t, 422, code)
		}

		assert.Equal(t, 1, outcomes, "status %d must map to exactly one outcome", code)

		if code < 400 {
			assert.NoError(t, err, "status %d", code)
		} else {
			assert.Error(t, err, "status %d", code)
		}
	}
}

func TestReasonPhraseFromStatusLine(t *testing.T) {
	t.Parallel()

	err := ledgerly.ErrorFromResponse(&ledgerly.Response{
		StatusCode: 502,
		Status:     "502 Upstream Gateway Sad",
	}, "p")

	serverErr := &ledgerly.ServerError{}
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "Upstream Gateway Sad", serverErr.Reason)
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "resource not found: customers/x", (&ledgerly.NotFoundError{Path: "customers/x"}).Error())
	assert.Equal(t, "resource not found", (&ledgerly.NotFoundError{}).Error())
	assert.Equal(t, "client error: 409 Conflict", (&ledgerly.ClientError{StatusCode: 409, Reason: "Conflict"}).Error())
	assert.Equal(t, "server error: 500 Internal Server Error", (&ledgerly.ServerError{StatusCode: 500, Reason: "Internal Server Error"}).Error())
	assert.Equal(t, "unprocessable entity", (&ledgerly.UnprocessableEntityError{}).Error())
	assert.Equal(t,
		"unprocessable entity: email: invalid; name: required",
		(&ledgerly.UnprocessableEntityError{Details: []ledgerly.FieldError{
			{Field: "email", Error: "invalid"},
			{Field: "name", Error: "required"},
		}}).Error(),
	)
	assert.Equal(t, "configuration error: API key is required", ledgerly.ErrAPIKeyRequired.Error())
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("sending: %w", &ledgerly.TransportError{Err: cause})

	assert.True(t, ledgerly.IsTransportError(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsConfigurationError(t *testing.T) {
	t.Parallel()

	assert.True(t, ledgerly.IsConfigurationError(ledgerly.ErrAPIKeyRequired))
	assert.False(t, ledgerly.IsConfigurationError(errors.New("other")))
}
