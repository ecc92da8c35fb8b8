package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// BankAccountsClient implements ledgerly.BankAccountsClient.
type BankAccountsClient struct {
	requester ledgerly.Requester
}

// NewBankAccountsClient creates a new bank accounts client.
func NewBankAccountsClient(requester ledgerly.Requester) *BankAccountsClient {
	return &BankAccountsClient{requester: requester}
}

// Get implements ledgerly.BankAccountsClient.Get.
func (c *BankAccountsClient) Get(ctx context.Context, bankAccountID string) (*ledgerly.BankAccount, error) {
	resource, err := c.requester.Get(ctx, "bank-accounts/{id}", map[string]interface{}{"id": bankAccountID})
	if err != nil {
		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return resourceAs[*ledgerly.BankAccount](resource)
}

// List implements ledgerly.BankAccountsClient.List.
func (c *BankAccountsClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "bank-accounts", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.BankAccountsClient.Paginate.
func (c *BankAccountsClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.BankAccountsClient.Create.
func (c *BankAccountsClient) Create(ctx context.Context, request *ledgerly.BankAccountRequest) (*ledgerly.BankAccount, error) {
	resource, err := c.requester.Post(ctx, "bank-accounts", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating bank account: %w", err)
	}

	return resourceAs[*ledgerly.BankAccount](resource)
}

// Update implements ledgerly.BankAccountsClient.Update.
func (c *BankAccountsClient) Update(ctx context.Context, bankAccountID string, request *ledgerly.BankAccountRequest) (*ledgerly.BankAccount, error) {
	resource, err := c.requester.Put(ctx, "bank-accounts/{id}", map[string]interface{}{"id": bankAccountID}, request)
	if err != nil {
		return nil, fmt.Errorf("updating bank account: %w", err)
	}

	return resourceAs[*ledgerly.BankAccount](resource)
}

// Deactivate implements ledgerly.BankAccountsClient.Deactivate.
func (c *BankAccountsClient) Deactivate(ctx context.Context, bankAccountID string) (*ledgerly.BankAccount, error) {
	resource, err := c.requester.Post(ctx, "bank-accounts/{id}/deactivation", map[string]interface{}{"id": bankAccountID}, nil)
	if err != nil {
		return nil, fmt.Errorf("deactivating bank account: %w", err)
	}

	return resourceAs[*ledgerly.BankAccount](resource)
}
