package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the production Ledgerly API host.
	DefaultBaseURL = "https://api.ledgerly.io"

	// APIVersion is the version path segment embedded in every request URI.
	APIVersion = "v2.1"

	// DefaultUserAgent identifies the SDK on outgoing requests.
	DefaultUserAgent = "ledgerly-go/2.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout bounds quick calls such as login verification.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry bounds for the shipped transport. The dispatch pipeline itself never
// retries; these only apply when retries are enabled on the transport.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageLimit is the collection page size used when none is requested.
	DefaultPageLimit = 100
)

// CLI output formats.
const (
	// FormatTable is the default tabular output format.
	FormatTable = "table"

	// FormatJSON is the JSON output format.
	FormatJSON = "json"

	// FormatYAML is the YAML output format.
	FormatYAML = "yaml"
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum number of entries in the memory cache.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the time-to-live applied to cached responses.
	DefaultCacheTTL = 1 * time.Minute
)
