package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// WebsitesClient implements ledgerly.WebsitesClient.
type WebsitesClient struct {
	requester ledgerly.Requester
}

// NewWebsitesClient creates a new websites client.
func NewWebsitesClient(requester ledgerly.Requester) *WebsitesClient {
	return &WebsitesClient{requester: requester}
}

// Get implements ledgerly.WebsitesClient.Get.
func (c *WebsitesClient) Get(ctx context.Context, websiteID string) (*ledgerly.Website, error) {
	resource, err := c.requester.Get(ctx, "websites/{id}", map[string]interface{}{"id": websiteID})
	if err != nil {
		return nil, fmt.Errorf("getting website: %w", err)
	}

	return resourceAs[*ledgerly.Website](resource)
}

// List implements ledgerly.WebsitesClient.List.
func (c *WebsitesClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "websites", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing websites: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.WebsitesClient.Paginate.
func (c *WebsitesClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.WebsitesClient.Create.
func (c *WebsitesClient) Create(ctx context.Context, request *ledgerly.WebsiteRequest) (*ledgerly.Website, error) {
	resource, err := c.requester.Post(ctx, "websites", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating website: %w", err)
	}

	return resourceAs[*ledgerly.Website](resource)
}

// Update implements ledgerly.WebsitesClient.Update.
func (c *WebsitesClient) Update(ctx context.Context, websiteID string, request *ledgerly.WebsiteRequest) (*ledgerly.Website, error) {
	resource, err := c.requester.Put(ctx, "websites/{id}", map[string]interface{}{"id": websiteID}, request)
	if err != nil {
		return nil, fmt.Errorf("updating website: %w", err)
	}

	return resourceAs[*ledgerly.Website](resource)
}

// Delete implements ledgerly.WebsitesClient.Delete.
func (c *WebsitesClient) Delete(ctx context.Context, websiteID string) error {
	err := c.requester.Delete(ctx, "websites/{id}", map[string]interface{}{"id": websiteID})
	if err != nil {
		return fmt.Errorf("deleting website: %w", err)
	}

	return nil
}
