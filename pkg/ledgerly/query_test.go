package ledgerly_test

import (
	"testing"

	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/stretchr/testify/assert"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	params := &ledgerly.QueryParams{
		Limit:  25,
		Offset: 50,
		Sort:   []string{"-createdTime", "email"},
		Filter: map[string]string{"status": "active"},
		Fields: []string{"id", "email"},
		Expand: []string{"website"},
		Q:      "jane",
	}

	values := params.ToValues()

	assert.Equal(t, "25", values.Get("limit"))
	assert.Equal(t, "50", values.Get("offset"))
	assert.Equal(t, "-createdTime,email", values.Get("sort"))
	assert.Equal(t, "active", values.Get("filter[status]"))
	assert.Equal(t, "id,email", values.Get("fields"))
	assert.Equal(t, "website", values.Get("expand"))
	assert.Equal(t, "jane", values.Get("q"))
}

func TestQueryParams_ZeroValuesOmitted(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ledgerly.NewQueryParams().ToValues())
	assert.Empty(t, ledgerly.NewQueryParams().ToMap())
}

func TestQueryParams_WithPage(t *testing.T) {
	t.Parallel()

	params := &ledgerly.QueryParams{Limit: 10, Sort: []string{"email"}}
	page := params.WithPage(30, 15)

	assert.Equal(t, 30, page.Offset)
	assert.Equal(t, 15, page.Limit)
	assert.Equal(t, []string{"email"}, page.Sort)

	// The receiver is untouched.
	assert.Equal(t, 0, params.Offset)
	assert.Equal(t, 10, params.Limit)
}

func TestQueryParams_ToMapNil(t *testing.T) {
	t.Parallel()

	var params *ledgerly.QueryParams

	assert.Nil(t, params.ToMap())
}

func TestQueryParams_ToMapFeedsURIBuilder(t *testing.T) {
	t.Parallel()

	params := &ledgerly.QueryParams{Limit: 10, Filter: map[string]string{"status": "past-due"}}

	uri := ledgerly.ExpandURI("invoices", params.ToMap())

	assert.Equal(t, "invoices?filter%5Bstatus%5D=past-due&limit=10", uri)
}
