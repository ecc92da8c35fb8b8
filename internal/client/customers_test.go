package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
)

func TestCustomersClient_Get(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK,
		`{"id":"cust_1","email":"jane@example.com","firstName":"Jane"}`, nil))

	customer, err := c.Customers().Get(context.Background(), "cust_1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, record.Method)
	assert.Equal(t, "/v2.1/customers/cust_1", record.Path)
	assert.Equal(t, "cust_1", customer.ID)
	assert.Equal(t, "jane@example.com", customer.Email)
}

func TestCustomersClient_GetNotFound(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusNotFound, ``, nil))

	_, err := c.Customers().Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, ledgerly.IsNotFound(err))
}

func TestCustomersClient_List(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	body := `{"data":[{"id":"cust_1"},{"id":"cust_2"}],"total":7,"offset":0,"limit":2}`
	c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK, body, nil))

	collection, err := c.Customers().List(context.Background(), &ledgerly.QueryParams{
		Limit:  2,
		Filter: map[string]string{"status": "active"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v2.1/customers", record.Path)
	assert.Equal(t, "filter%5Bstatus%5D=active&limit=2", record.Query)
	assert.Equal(t, 7, collection.Total)
	require.Len(t, collection.Items, 2)
	assert.IsType(t, &ledgerly.Customer{}, collection.Items[0])
}

func TestCustomersClient_Create(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusCreated,
		`{"id":"cust_9","email":"new@example.com"}`,
		map[string]string{"Location": "/v2.1/customers/cust_9"}))

	customer, err := c.Customers().Create(context.Background(), &ledgerly.CustomerRequest{
		Email:     "new@example.com",
		WebsiteID: "web_1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, record.Method)
	assert.JSONEq(t, `{"email":"new@example.com","websiteId":"web_1"}`, string(record.Body))
	assert.Equal(t, "cust_9", customer.ID)
}

func TestCustomersClient_CreateValidationError(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusUnprocessableEntity,
		`{"details":[{"field":"email","error":"required"}]}`, nil))

	_, err := c.Customers().Create(context.Background(), &ledgerly.CustomerRequest{})
	require.Error(t, err)

	unprocessable := &ledgerly.UnprocessableEntityError{}
	require.ErrorAs(t, err, &unprocessable)
	assert.Equal(t, "email", unprocessable.Details[0].Field)
}

func TestCustomersClient_Delete(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusNoContent, ``, nil))

	err := c.Customers().Delete(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, record.Method)
	assert.Equal(t, "/v2.1/customers/cust_1", record.Path)
}

func TestCustomersClient_Paginate(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")

		w.WriteHeader(http.StatusOK)

		if offset == "0" || offset == "" {
			_, _ = w.Write([]byte(`{"data":[{"id":"cust_1"},{"id":"cust_2"}],"total":3,"offset":0,"limit":2}`))
		} else {
			_, _ = w.Write([]byte(`{"data":[{"id":"cust_3"}],"total":3,"offset":2,"limit":2}`))
		}
	})

	paginator := c.Customers().Paginate(&ledgerly.QueryParams{Limit: 2})

	var ids []string

	for paginator.HasNext() {
		page, err := paginator.NextPage(context.Background())
		require.NoError(t, err)

		for _, item := range page.Items {
			customer, ok := item.(*ledgerly.Customer)
			require.True(t, ok)

			ids = append(ids, customer.ID)
		}
	}

	assert.Equal(t, []string{"cust_1", "cust_2", "cust_3"}, ids)
}

func TestSubscriptionsClient_Cancel(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK,
		`{"id":"sub_1","status":"canceled","cancelReason":"requested-by-customer"}`, nil))

	subscription, err := c.Subscriptions().Cancel(context.Background(), "sub_1",
		&ledgerly.SubscriptionCancelRequest{Reason: "requested-by-customer"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, record.Method)
	assert.Equal(t, "/v2.1/subscriptions/sub_1/cancellation", record.Path)
	assert.JSONEq(t, `{"reason":"requested-by-customer"}`, string(record.Body))
	assert.Equal(t, "canceled", subscription.Status)
}

func TestInvoicesClient_Issue(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK,
		`{"id":"inv_1","status":"issued"}`, nil))

	invoice, err := c.Invoices().Issue(context.Background(), "inv_1")
	require.NoError(t, err)

	assert.Equal(t, "/v2.1/invoices/inv_1/issuance", record.Path)
	assert.Equal(t, "{}", string(record.Body))
	assert.Equal(t, "issued", invoice.Status)
}

func TestBankAccountsClient_Deactivate(t *testing.T) {
	t.Parallel()

	var record recordedRequest

	c, _ := newTestClient(t, recordingHandler(&record, http.StatusOK,
		`{"id":"ba_1","status":"deactivated"}`, nil))

	account, err := c.BankAccounts().Deactivate(context.Background(), "ba_1")
	require.NoError(t, err)

	assert.Equal(t, "/v2.1/bank-accounts/ba_1/deactivation", record.Path)
	assert.Equal(t, "deactivated", account.Status)
}
