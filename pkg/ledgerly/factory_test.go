package ledgerly_test

import (
	"testing"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateEntity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		body string
		kind string
	}{
		{
			name: "customer by relative path",
			path: "customers/cust_123",
			body: `{"id":"cust_123","email":"jane@example.com"}`,
			kind: "customer",
		},
		{
			name: "bank account by absolute location",
			path: "https://api.ledgerly.io/v2.1/bank-accounts/abc123",
			body: `{"id":"abc123","last4":"6789"}`,
			kind: "bank-account",
		},
		{
			name: "version prefix stripped",
			path: "/v2.1/invoices/inv_9",
			body: `{"id":"inv_9"}`,
			kind: "invoice",
		},
		{
			name: "query string ignored",
			path: "plans/plan_1?expand=website",
			body: `{"id":"plan_1"}`,
			kind: "plan",
		},
		{
			name: "cancellation action returns subscription",
			path: "subscriptions/sub_1/cancellation",
			body: `{"id":"sub_1","status":"canceled"}`,
			kind: "subscription",
		},
		{
			name: "deactivation action returns payment card",
			path: "payment-cards/card_1/deactivation",
			body: `{"id":"card_1"}`,
			kind: "payment-card",
		},
		{
			name: "unknown path falls back to generic",
			path: "gateway-accounts/gw_1",
			body: `{"id":"gw_1"}`,
			kind: "resource",
		},
		{
			name: "empty path falls back to generic",
			path: "",
			body: `{"id":"x"}`,
			kind: "resource",
		},
	}

	factory := ledgerly.NewFactory()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resource, err := factory.Create(testCase.path, []byte(testCase.body))
			require.NoError(t, err)
			assert.Equal(t, testCase.kind, resource.ResourceKind())
		})
	}
}

func TestFactory_CreateEntityFields(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	resource, err := factory.Create("customers/cust_123", []byte(`{"id":"cust_123","email":"jane@example.com"}`))
	require.NoError(t, err)

	customer, ok := resource.(*ledgerly.Customer)
	require.True(t, ok)
	assert.Equal(t, "cust_123", customer.ID)
	assert.Equal(t, "jane@example.com", customer.Email)
}

func TestFactory_MostSpecificPatternWins(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()
	factory.Register("{kind}/{id}/deactivation", func() ledgerly.Resource { return &ledgerly.GenericResource{} })

	resource, err := factory.Create("bank-accounts/abc/deactivation", []byte(`{"id":"abc"}`))
	require.NoError(t, err)

	// Two literal segments beat one.
	assert.IsType(t, &ledgerly.BankAccount{}, resource)
}

func TestFactory_CreateCollection(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	body := `{
		"data": [
			{"id": "cust_1", "email": "a@example.com"},
			{"id": "cust_2", "email": "b@example.com"}
		],
		"total": 42,
		"offset": 0,
		"limit": 2
	}`

	resource, err := factory.Create("customers", []byte(body))
	require.NoError(t, err)

	collection, ok := resource.(*ledgerly.Collection)
	require.True(t, ok)
	assert.Equal(t, 42, collection.Total)
	assert.Equal(t, 0, collection.Offset)
	assert.Equal(t, 2, collection.Limit)
	assert.True(t, collection.HasMore())
	require.Len(t, collection.Items, 2)

	first, ok := collection.Items[0].(*ledgerly.Customer)
	require.True(t, ok)
	assert.Equal(t, "cust_1", first.ID)
}

func TestFactory_CreateCollectionBareArray(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	resource, err := factory.Create("transactions", []byte(`[{"id":"txn_1"},{"id":"txn_2"}]`))
	require.NoError(t, err)

	collection, ok := resource.(*ledgerly.Collection)
	require.True(t, ok)
	// No envelope metadata: total defaults to the item count.
	assert.Equal(t, 2, collection.Total)
	assert.False(t, collection.HasMore())
	assert.IsType(t, &ledgerly.Transaction{}, collection.Items[0])
}

func TestFactory_CollectionItemSelfLinkWins(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	body := `{"data":[{"id":"inv_1","_links":{"self":{"href":"https://api.ledgerly.io/v2.1/invoices/inv_1"}}}]}`

	resource, err := factory.Create("search-results", []byte(body))
	require.NoError(t, err)

	collection, ok := resource.(*ledgerly.Collection)
	require.True(t, ok)
	require.Len(t, collection.Items, 1)
	assert.IsType(t, &ledgerly.Invoice{}, collection.Items[0])
}

func TestFactory_GenericFallbackNeverErrors(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "unregistered path", path: "disputes/d_1", body: `{"id":"d_1","reason":"fraud"}`},
		{name: "scalar body", path: "customers/c_1", body: `"just a string"`},
		{name: "empty body unknown path", path: "nothing/here", body: ""},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resource, err := factory.Create(testCase.path, []byte(testCase.body))
			require.NoError(t, err)
			require.NotNil(t, resource)
		})
	}
}

func TestFactory_GenericResourceFields(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	resource, err := factory.Create("disputes/d_1", []byte(`{"id":"d_1","reason":"fraud"}`))
	require.NoError(t, err)

	generic, ok := resource.(*ledgerly.GenericResource)
	require.True(t, ok)
	assert.Equal(t, "disputes/d_1", generic.Path)
	assert.Equal(t, "fraud", generic.String("reason"))
	assert.Empty(t, generic.String("missing"))
}

func TestEmbedded_Resolve(t *testing.T) {
	t.Parallel()

	factory := ledgerly.NewFactory()

	body := `{
		"id": "sub_1",
		"_embedded": {
			"customer": {"id": "cust_9", "email": "jane@example.com"},
			"mystery": {"id": "m_1"}
		}
	}`

	resource, err := factory.Create("subscriptions/sub_1", []byte(body))
	require.NoError(t, err)

	subscription, ok := resource.(*ledgerly.Subscription)
	require.True(t, ok)
	assert.True(t, subscription.Embedded.Has("customer"))
	assert.False(t, subscription.Embedded.Has("plan"))

	resolved, err := subscription.Embedded.Resolve("customer")
	require.NoError(t, err)

	customer, ok := resolved.(*ledgerly.Customer)
	require.True(t, ok)
	assert.Equal(t, "cust_9", customer.ID)

	// Unregistered names still resolve, as generic resources.
	unknown, err := subscription.Embedded.Resolve("mystery")
	require.NoError(t, err)
	assert.Equal(t, "resource", unknown.ResourceKind())
}
