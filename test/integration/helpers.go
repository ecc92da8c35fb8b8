//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerclient"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey  string
	BaseURL string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("LEDGERLY_API_KEY"),
		BaseURL: os.Getenv("LEDGERLY_BASE_URL"),
		Verbose: os.Getenv("LEDGERLY_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when the sandbox credentials are not
// configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("LEDGERLY_API_KEY not set, skipping integration test")
	}
}

// NewClient creates an SDK client against the configured sandbox.
func (config *TestConfig) NewClient(t *testing.T) ledgerly.Client {
	t.Helper()

	client, err := ledgerclient.New(&ledgerly.Config{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
	})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}
