package ledgerclient

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/client"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// New creates a Ledgerly API client from config. The API key is required and
// validated here, at construction; a missing key never surfaces at call
// time.
func New(config *ledgerly.Config) (ledgerly.Client, error) {
	if config == nil {
		return nil, ledgerly.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, ledgerly.ErrAPIKeyRequired
	}

	if config.BaseURL != "" {
		config.BaseURL = normalizeBaseURL(config.BaseURL)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client against the production host.
func NewWithAPIKey(apiKey string) (ledgerly.Client, error) {
	return New(&ledgerly.Config{APIKey: apiKey})
}

// NewWithTransport creates a client with a custom Transport, e.g. a test
// double returning canned responses.
func NewWithTransport(apiKey string, transport ledgerly.Transport) (ledgerly.Client, error) {
	return New(&ledgerly.Config{APIKey: apiKey, Transport: transport})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

var (
	defaultMu     sync.RWMutex
	defaultClient ledgerly.Client
)

// SetDefault installs the process-wide default client.
func SetDefault(client ledgerly.Client) {
	defaultMu.Lock()
	defaultClient = client
	defaultMu.Unlock()
}

// Default returns the process-wide default client installed by SetDefault.
func Default() (ledgerly.Client, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultClient == nil {
		return nil, ledgerly.ErrNoDefaultClient
	}

	return defaultClient, nil
}

// ResetDefault removes the process-wide default client.
func ResetDefault() {
	defaultMu.Lock()
	defaultClient = nil
	defaultMu.Unlock()
}
