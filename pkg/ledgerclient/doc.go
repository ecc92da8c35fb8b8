// Package ledgerclient is the entry point for creating Ledgerly API
// clients.
//
// Most programs need only an API key:
//
//	client, err := ledgerclient.NewWithAPIKey(os.Getenv("LEDGERLY_API_KEY"))
//
// For full control use New with a ledgerly.Config. A process-wide default
// client can be installed with SetDefault for programs that prefer a single
// shared handle; its lifecycle (SetDefault/Default/ResetDefault) is explicit
// and nothing in the SDK depends on it.
package ledgerclient
