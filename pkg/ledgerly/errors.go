package ledgerly

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ConfigurationError reports an invalid client configuration. It is returned
// at construction time, never at call time.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// FieldError describes a single field-level validation failure carried in a
// 422 response body.
type FieldError struct {
	Field string `json:"field" yaml:"field"`
	Error string `json:"error" yaml:"error"`
}

// NotFoundError is returned when the API responds with 404.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return "resource not found"
	}

	return "resource not found: " + e.Path
}

// UnprocessableEntityError is returned when the API responds with 422. It
// carries the field-level details from the response body.
type UnprocessableEntityError struct {
	Details []FieldError
}

// Error implements the error interface.
func (e *UnprocessableEntityError) Error() string {
	if len(e.Details) == 0 {
		return "unprocessable entity"
	}

	parts := make([]string, 0, len(e.Details))
	for _, detail := range e.Details {
		parts = append(parts, detail.Field+": "+detail.Error)
	}

	return "unprocessable entity: " + strings.Join(parts, "; ")
}

// ClientError is returned for 4xx responses other than 404 and 422.
type ClientError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return fmt.Sprintf("client error: %d %s", e.StatusCode, e.Reason)
}

// ServerError is returned for 5xx responses.
type ServerError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d %s", e.StatusCode, e.Reason)
}

// TransportError wraps a network-level failure surfaced unchanged from the
// Transport.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrAPIKeyRequired   = &ConfigurationError{Reason: "API key is required"}
	ErrConfigRequired   = errors.New("config is required")
	ErrNilRequest       = errors.New("request is nil")
	ErrNoTerminalLink   = errors.New("middleware chain has no terminal link")
	ErrNoMoreItems      = errors.New("no more items")
	ErrCacheDisabled    = errors.New("cache disabled")
	ErrCacheMiss        = errors.New("cache miss")
	ErrCacheEntryNil    = errors.New("cache entry is nil")
	ErrUnexpectedKind   = errors.New("unexpected resource kind")
	ErrNoDefaultClient  = errors.New("no default client configured")
	ErrNATSConfigNeeded = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCache = errors.New("unsupported cache type")
)

// ErrorFromResponse maps a response status code to a typed error. It returns
// nil for any status below 400. 404 and 422 take precedence over the generic
// ranges; the mapping is total and exclusive over all status codes.
func ErrorFromResponse(resp *Response, path string) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Path: path}
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var body struct {
			Details []FieldError `json:"details"`
		}
		// A malformed 422 body still maps to an Unprocessable error with
		// empty details.
		_ = json.Unmarshal(resp.Body, &body)

		return &UnprocessableEntityError{Details: body.Details}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &ServerError{StatusCode: resp.StatusCode, Reason: reasonPhrase(resp)}
	case resp.StatusCode >= http.StatusBadRequest:
		return &ClientError{StatusCode: resp.StatusCode, Reason: reasonPhrase(resp)}
	default:
		return nil
	}
}

// reasonPhrase extracts the reason phrase from a response status line,
// falling back to the standard text for the code.
func reasonPhrase(resp *Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase != "" {
		return phrase
	}

	return http.StatusText(resp.StatusCode)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsUnprocessableEntity checks if the error is a validation error.
func IsUnprocessableEntity(err error) bool {
	unprocessable := &UnprocessableEntityError{}

	return errors.As(err, &unprocessable)
}

// IsClientError checks if the error is a generic 4xx error.
func IsClientError(err error) bool {
	clientErr := &ClientError{}

	return errors.As(err, &clientErr)
}

// IsServerError checks if the error is a 5xx error.
func IsServerError(err error) bool {
	serverErr := &ServerError{}

	return errors.As(err, &serverErr)
}

// IsTransportError checks if the error is a network-level failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsConfigurationError checks if the error is a configuration error.
func IsConfigurationError(err error) bool {
	configErr := &ConfigurationError{}

	return errors.As(err, &configErr)
}
