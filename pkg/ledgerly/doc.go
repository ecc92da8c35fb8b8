// Package ledgerly defines the public surface of the Ledgerly API client:
// configuration, the Client interface, typed resources and errors, the
// request middleware chain, URI template expansion, query parameters,
// pagination helpers, and the optional response cache.
//
// Create clients with the ledgerclient package:
//
//	client, err := ledgerclient.New(&ledgerly.Config{
//		APIKey: os.Getenv("LEDGERLY_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	customer, err := client.Customers().Get(ctx, "cust_123")
//
// Every call goes through a single dispatch pipeline: the request URI is
// expanded from a path template, the payload is serialized as a JSON object,
// the request runs through the middleware chain (base-URI rewrite, API key
// injection, then the transport), the response status is mapped to a typed
// error, and the body is resolved into a typed resource by the resource
// factory. Service clients such as CustomersClient contain no HTTP logic of
// their own.
//
// A Client is safe for concurrent use as long as its Transport is; the
// shipped transport is. The pipeline performs no retries and holds no
// response cache unless a caching middleware is explicitly configured.
package ledgerly
