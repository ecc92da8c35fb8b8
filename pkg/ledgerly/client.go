package ledgerly

import (
	"context"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a ledgerly.Client.
//
// APIKey is the only required field; construction fails without it. BaseURL
// defaults to the production host and Transport to the shipped HTTP
// transport. The configuration is treated as read-only once a client has
// consumed it.
//
// The retry fields tune the shipped transport only; the dispatch pipeline
// never retries a call. Per-request timeouts are controlled via the context
// passed to client methods.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string
	// BaseURL is the API host, without the version segment. Optional;
	// defaults to the production host.
	BaseURL string
	// Transport sends the fully-formed requests. Optional; defaults to the
	// shipped implementation. Must be safe for concurrent use.
	Transport Transport

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// HTTPTimeout is the default timeout applied by the shipped transport.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries for
	// transient failures. 0 disables retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between transport retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between transport retries.
	RetryWaitMax time.Duration

	// Middlewares are extra chain links attached after the built-in base-URI
	// and authentication links, in order.
	Middlewares []Middleware
	// Cache enables the caching middleware for GET responses. Nil leaves
	// caching off.
	Cache *CacheConfig
}

// Requester is the dispatch pipeline contract consumed by the service
// clients. Send expands pathTemplate against params, serializes payload as a
// JSON object, runs the request through the middleware chain, maps error
// statuses, and resolves the body into a typed resource. HEAD and DELETE
// return a nil resource.
type Requester interface {
	Send(ctx context.Context, method, pathTemplate string, params map[string]interface{}, payload interface{}, headers map[string]string) (Resource, error)

	Get(ctx context.Context, pathTemplate string, params map[string]interface{}) (Resource, error)
	Post(ctx context.Context, pathTemplate string, params map[string]interface{}, payload interface{}) (Resource, error)
	Put(ctx context.Context, pathTemplate string, params map[string]interface{}, payload interface{}) (Resource, error)
	Patch(ctx context.Context, pathTemplate string, params map[string]interface{}, payload interface{}) (Resource, error)
	Delete(ctx context.Context, pathTemplate string, params map[string]interface{}) error
	Head(ctx context.Context, pathTemplate string, params map[string]interface{}) error
}

// CustomersClient manages customers.
type CustomersClient interface {
	Get(ctx context.Context, customerID string) (*Customer, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *CustomerRequest) (*Customer, error)
	Update(ctx context.Context, customerID string, request *CustomerRequest) (*Customer, error)
	Delete(ctx context.Context, customerID string) error
}

// PlansClient manages billing plans.
type PlansClient interface {
	Get(ctx context.Context, planID string) (*Plan, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *PlanRequest) (*Plan, error)
	Update(ctx context.Context, planID string, request *PlanRequest) (*Plan, error)
	Delete(ctx context.Context, planID string) error
}

// SubscriptionsClient manages subscriptions.
type SubscriptionsClient interface {
	Get(ctx context.Context, subscriptionID string) (*Subscription, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *SubscriptionRequest) (*Subscription, error)
	Update(ctx context.Context, subscriptionID string, request *SubscriptionRequest) (*Subscription, error)
	Cancel(ctx context.Context, subscriptionID string, request *SubscriptionCancelRequest) (*Subscription, error)
}

// InvoicesClient manages invoices.
type InvoicesClient interface {
	Get(ctx context.Context, invoiceID string) (*Invoice, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *InvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, invoiceID string, request *InvoiceRequest) (*Invoice, error)
	Issue(ctx context.Context, invoiceID string) (*Invoice, error)
}

// TransactionsClient manages payment transactions.
type TransactionsClient interface {
	Get(ctx context.Context, transactionID string) (*Transaction, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *TransactionRequest) (*Transaction, error)
}

// BankAccountsClient manages bank account payment instruments.
type BankAccountsClient interface {
	Get(ctx context.Context, bankAccountID string) (*BankAccount, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *BankAccountRequest) (*BankAccount, error)
	Update(ctx context.Context, bankAccountID string, request *BankAccountRequest) (*BankAccount, error)
	Deactivate(ctx context.Context, bankAccountID string) (*BankAccount, error)
}

// PaymentCardsClient manages card payment instruments.
type PaymentCardsClient interface {
	Get(ctx context.Context, paymentCardID string) (*PaymentCard, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *PaymentCardRequest) (*PaymentCard, error)
	Deactivate(ctx context.Context, paymentCardID string) (*PaymentCard, error)
}

// WebsitesClient manages merchant websites.
type WebsitesClient interface {
	Get(ctx context.Context, websiteID string) (*Website, error)
	List(ctx context.Context, params *QueryParams) (*Collection, error)
	Paginate(params *QueryParams) *Paginator
	Create(ctx context.Context, request *WebsiteRequest) (*Website, error)
	Update(ctx context.Context, websiteID string, request *WebsiteRequest) (*Website, error)
	Delete(ctx context.Context, websiteID string) error
}

// Client is the full Ledgerly API client: the raw dispatch pipeline plus one
// service client per resource.
type Client interface {
	Requester

	Customers() CustomersClient
	Plans() PlansClient
	Subscriptions() SubscriptionsClient
	Invoices() InvoicesClient
	Transactions() TransactionsClient
	BankAccounts() BankAccountsClient
	PaymentCards() PaymentCardsClient
	Websites() WebsitesClient
}
