package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// CustomersClient implements ledgerly.CustomersClient. It performs no HTTP
// logic of its own; everything goes through the dispatch pipeline.
type CustomersClient struct {
	requester ledgerly.Requester
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(requester ledgerly.Requester) *CustomersClient {
	return &CustomersClient{requester: requester}
}

// Get implements ledgerly.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, customerID string) (*ledgerly.Customer, error) {
	resource, err := c.requester.Get(ctx, "customers/{id}", map[string]interface{}{"id": customerID})
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return resourceAs[*ledgerly.Customer](resource)
}

// List implements ledgerly.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "customers", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.CustomersClient.Paginate.
func (c *CustomersClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *ledgerly.CustomerRequest) (*ledgerly.Customer, error) {
	resource, err := c.requester.Post(ctx, "customers", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return resourceAs[*ledgerly.Customer](resource)
}

// Update implements ledgerly.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, customerID string, request *ledgerly.CustomerRequest) (*ledgerly.Customer, error) {
	resource, err := c.requester.Put(ctx, "customers/{id}", map[string]interface{}{"id": customerID}, request)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return resourceAs[*ledgerly.Customer](resource)
}

// Delete implements ledgerly.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, customerID string) error {
	err := c.requester.Delete(ctx, "customers/{id}", map[string]interface{}{"id": customerID})
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}
