package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// PlansClient implements ledgerly.PlansClient.
type PlansClient struct {
	requester ledgerly.Requester
}

// NewPlansClient creates a new plans client.
func NewPlansClient(requester ledgerly.Requester) *PlansClient {
	return &PlansClient{requester: requester}
}

// Get implements ledgerly.PlansClient.Get.
func (c *PlansClient) Get(ctx context.Context, planID string) (*ledgerly.Plan, error) {
	resource, err := c.requester.Get(ctx, "plans/{id}", map[string]interface{}{"id": planID})
	if err != nil {
		return nil, fmt.Errorf("getting plan: %w", err)
	}

	return resourceAs[*ledgerly.Plan](resource)
}

// List implements ledgerly.PlansClient.List.
func (c *PlansClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "plans", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.PlansClient.Paginate.
func (c *PlansClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.PlansClient.Create.
func (c *PlansClient) Create(ctx context.Context, request *ledgerly.PlanRequest) (*ledgerly.Plan, error) {
	resource, err := c.requester.Post(ctx, "plans", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	return resourceAs[*ledgerly.Plan](resource)
}

// Update implements ledgerly.PlansClient.Update.
func (c *PlansClient) Update(ctx context.Context, planID string, request *ledgerly.PlanRequest) (*ledgerly.Plan, error) {
	resource, err := c.requester.Put(ctx, "plans/{id}", map[string]interface{}{"id": planID}, request)
	if err != nil {
		return nil, fmt.Errorf("updating plan: %w", err)
	}

	return resourceAs[*ledgerly.Plan](resource)
}

// Delete implements ledgerly.PlansClient.Delete.
func (c *PlansClient) Delete(ctx context.Context, planID string) error {
	err := c.requester.Delete(ctx, "plans/{id}", map[string]interface{}{"id": planID})
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	return nil
}
