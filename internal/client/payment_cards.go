package client

import (
	"context"
	"fmt"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

// PaymentCardsClient implements ledgerly.PaymentCardsClient.
type PaymentCardsClient struct {
	requester ledgerly.Requester
}

// NewPaymentCardsClient creates a new payment cards client.
func NewPaymentCardsClient(requester ledgerly.Requester) *PaymentCardsClient {
	return &PaymentCardsClient{requester: requester}
}

// Get implements ledgerly.PaymentCardsClient.Get.
func (c *PaymentCardsClient) Get(ctx context.Context, paymentCardID string) (*ledgerly.PaymentCard, error) {
	resource, err := c.requester.Get(ctx, "payment-cards/{id}", map[string]interface{}{"id": paymentCardID})
	if err != nil {
		return nil, fmt.Errorf("getting payment card: %w", err)
	}

	return resourceAs[*ledgerly.PaymentCard](resource)
}

// List implements ledgerly.PaymentCardsClient.List.
func (c *PaymentCardsClient) List(ctx context.Context, params *ledgerly.QueryParams) (*ledgerly.Collection, error) {
	resource, err := c.requester.Get(ctx, "payment-cards", params.ToMap())
	if err != nil {
		return nil, fmt.Errorf("listing payment cards: %w", err)
	}

	return collectionFrom(resource)
}

// Paginate implements ledgerly.PaymentCardsClient.Paginate.
func (c *PaymentCardsClient) Paginate(params *ledgerly.QueryParams) *ledgerly.Paginator {
	return ledgerly.NewPaginator(ledgerly.PageListerFunc(c.List), params)
}

// Create implements ledgerly.PaymentCardsClient.Create.
func (c *PaymentCardsClient) Create(ctx context.Context, request *ledgerly.PaymentCardRequest) (*ledgerly.PaymentCard, error) {
	resource, err := c.requester.Post(ctx, "payment-cards", nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating payment card: %w", err)
	}

	return resourceAs[*ledgerly.PaymentCard](resource)
}

// Deactivate implements ledgerly.PaymentCardsClient.Deactivate.
func (c *PaymentCardsClient) Deactivate(ctx context.Context, paymentCardID string) (*ledgerly.PaymentCard, error) {
	resource, err := c.requester.Post(ctx, "payment-cards/{id}/deactivation", map[string]interface{}{"id": paymentCardID}, nil)
	if err != nil {
		return nil, fmt.Errorf("deactivating payment card: %w", err)
	}

	return resourceAs[*ledgerly.PaymentCard](resource)
}
