package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// TransactionsClient implements ledgerly.TransactionsClient. Transactions
// are immutable once created, so there is no update or delete.
type TransactionsClient struct {
	requester ledgerly.Requester
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(requester ledgerly.Requester) *TransactionsClient {
	return &TransactionsClient{requester: requester}
}

// Get implements ledgerly.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, transactionID string) (*ledgerly.Transaction, error) {
	resource, err := c.requester.Get(ctx, "transactions/{id}", map[string]interface{}{"id": transactionID})
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return resourceAs[*ledgerly.Transaction](resource)
}

// List implements ledgerly.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "transactions", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.TransactionsClient.Paginate.
func (c *TransactionsClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.TransactionsClient.Create.
func (c *TransactionsClient) Create(ctx context.Context, request *ledgerly.TransactionRequest) (*ledgerly.Transaction, error) {
	resource, err := c.requester.Post(ctx, "transactions", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return resourceAs[*ledgerly.Transaction](resource)
}
