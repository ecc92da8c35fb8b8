package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// SubscriptionsClient implements ledgerly.SubscriptionsClient.
type SubscriptionsClient struct {
	requester ledgerly.Requester
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(requester ledgerly.Requester) *SubscriptionsClient {
	return &SubscriptionsClient{requester: requester}
}

// Get implements ledgerly.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, subscriptionID string) (*ledgerly.Subscription, error) {
	resource, err := c.requester.Get(ctx, "subscriptions/{id}", map[string]interface{}{"id": subscriptionID})
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return resourceAs[*ledgerly.Subscription](resource)
}

// List implements ledgerly.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "subscriptions", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.SubscriptionsClient.Paginate.
func (c *SubscriptionsClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *ledgerly.SubscriptionRequest) (*ledgerly.Subscription, error) {
	resource, err := c.requester.Post(ctx, "subscriptions", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return resourceAs[*ledgerly.Subscription](resource)
}

// Update implements ledgerly.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, subscriptionID string, request *ledgerly.SubscriptionRequest) (*ledgerly.Subscription, error) {
	resource, err := c.requester.Put(ctx, "subscriptions/{id}", map[string]interface{}{"id": subscriptionID}, request)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return resourceAs[*ledgerly.Subscription](resource)
}

// Cancel implements ledgerly.SubscriptionsClient.Cancel.
func (c *SubscriptionsClient) Cancel(ctx context.Context, subscriptionID string, request *ledgerly.SubscriptionCancelRequest) (*ledgerly.Subscription, error) {
	resource, err := c.requester.Post(ctx, "subscriptions/{id}/cancellation", map[string]interface{}{"id": subscriptionID}, request)
	if err != nil {
		return nil, fmt.Errorf("canceling subscription: %w", err)
	}

	return resourceAs[*ledgerly.Subscription](resource)
}
