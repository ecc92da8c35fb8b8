// Package client implements the Ledgerly API client: the dispatch pipeline
// that every call runs through, and the per-resource service clients built on
// top of it.
package client

import (
	"github.com/ledgerly-io/ledgerly-go/v2/internal/constants"
	"github.com/ledgerly-io/ledgerly-go/v2/internal/http"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// Client implements the ledgerly.Client interface. The middleware chain and
// configuration are set up once at construction and read-only afterwards;
// concurrent use is safe as long as the Transport is.
type Client struct {
	invoke  ledgerly.Next
	chain   *ledgerly.Chain
	factory *ledgerly.Factory
	logger  ledgerly.Logger
	baseURL string

	customers     ledgerly.CustomersClient
	plans         ledgerly.PlansClient
	subscriptions ledgerly.SubscriptionsClient
	invoices      ledgerly.InvoicesClient
	transactions  ledgerly.TransactionsClient
	bankAccounts  ledgerly.BankAccountsClient
	paymentCards  ledgerly.PaymentCardsClient
	websites      ledgerly.WebsitesClient
}

// New creates a client from config. The API key is required; everything else
// is defaulted.
func New(config *ledgerly.Config) (*Client, error) {
	if config == nil {
		return nil, ledgerly.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, ledgerly.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	transport := config.Transport
	if transport == nil {
		transport = http.NewClient(transportOptions(config)...)
	}

	chain := ledgerly.NewChain(
		ledgerly.BaseURIMiddleware(baseURL, constants.APIVersion),
		ledgerly.APIKeyMiddleware(config.APIKey),
	)

	if config.Debug && config.Logger != nil {
		chain.Attach(ledgerly.LoggingMiddleware(config.Logger))
	}

	if config.Cache != nil {
		cache, err := ledgerly.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		chain.Attach(ledgerly.CachingMiddleware(cache, config.Cache.EntryTTL()))
	}

	for _, middleware := range config.Middlewares {
		chain.Attach(middleware)
	}

	client := &Client{
		invoke:  chain.Then(ledgerly.TransportLink(transport)),
		chain:   chain,
		factory: ledgerly.DefaultFactory(),
		logger:  config.Logger,
		baseURL: baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// transportOptions builds shipped-transport options from config.
func transportOptions(config *ledgerly.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.customers = NewCustomersClient(c)
	c.plans = NewPlansClient(c)
	c.subscriptions = NewSubscriptionsClient(c)
	c.invoices = NewInvoicesClient(c)
	c.transactions = NewTransactionsClient(c)
	c.bankAccounts = NewBankAccountsClient(c)
	c.paymentCards = NewPaymentCardsClient(c)
	c.websites = NewWebsitesClient(c)
}

// Customers implements ledgerly.Client.Customers.
func (c *Client) Customers() ledgerly.CustomersClient {
	return c.customers
}

// Plans implements ledgerly.Client.Plans.
func (c *Client) Plans() ledgerly.PlansClient {
	return c.plans
}

// Subscriptions implements ledgerly.Client.Subscriptions.
func (c *Client) Subscriptions() ledgerly.SubscriptionsClient {
	return c.subscriptions
}

// Invoices implements ledgerly.Client.Invoices.
func (c *Client) Invoices() ledgerly.InvoicesClient {
	return c.invoices
}

// Transactions implements ledgerly.Client.Transactions.
func (c *Client) Transactions() ledgerly.TransactionsClient {
	return c.transactions
}

// BankAccounts implements ledgerly.Client.BankAccounts.
func (c *Client) BankAccounts() ledgerly.BankAccountsClient {
	return c.bankAccounts
}

// PaymentCards implements ledgerly.Client.PaymentCards.
func (c *Client) PaymentCards() ledgerly.PaymentCardsClient {
	return c.paymentCards
}

// Websites implements ledgerly.Client.Websites.
func (c *Client) Websites() ledgerly.WebsitesClient {
	return c.websites
}
