package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// InvoicesClient implements ledgerly.InvoicesClient.
type InvoicesClient struct {
	requester ledgerly.Requester
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(requester ledgerly.Requester) *InvoicesClient {
	return &InvoicesClient{requester: requester}
}

// Get implements ledgerly.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, invoiceID string) (*ledgerly.Invoice, error) {
	resource, err := c.requester.Get(ctx, "invoices/{id}", map[string]interface{}{"id": invoiceID})
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return resourceAs[*ledgerly.Invoice](resource)
}

// List implements ledgerly.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "invoices", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.InvoicesClient.Paginate.
func (c *InvoicesClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, request *ledgerly.InvoiceRequest) (*ledgerly.Invoice, error) {
	resource, err := c.requester.Post(ctx, "invoices", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return resourceAs[*ledgerly.Invoice](resource)
}

// Update implements ledgerly.InvoicesClient.Update.
func (c *InvoicesClient) Update(ctx context.Context, invoiceID string, request *ledgerly.InvoiceRequest) (*ledgerly.Invoice, error) {
	resource, err := c.requester.Put(ctx, "invoices/{id}", map[string]interface{}{"id": invoiceID}, request)
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return resourceAs[*ledgerly.Invoice](resource)
}

// Issue implements ledgerly.InvoicesClient.Issue.
func (c *InvoicesClient) Issue(ctx context.Context, invoiceID string) (*ledgerly.Invoice, error) {
	resource, err := c.requester.Post(ctx, "invoices/{id}/issuance", map[string]interface{}{"id": invoiceID}, nil)
	if err != nil {
		return nil, fmt.Errorf("issuing invoice: %w", err)
	}

	return resourceAs[*ledgerly.Invoice](resource)
}
