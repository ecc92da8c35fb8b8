package ledgerly

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common query parameters for list requests.
type QueryParams struct {
	// Limit is the page size; 0 lets the API apply its default.
	Limit int
	// Offset is the zero-based index of the first item to return.
	Offset int
	// Sort lists fields to order by; prefix a field with "-" for descending.
	Sort []string
	// Filter restricts results by field value.
	Filter map[string]string
	// Fields limits the returned fields per item.
	Fields []string
	// Expand inlines the named related resources under _embedded.
	Expand []string
	// Q is a free-text search term.
	Q string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithPage returns a copy positioned at the given offset and limit.
func (q *QueryParams) WithPage(offset, limit int) *QueryParams {
	page := *q
	page.Offset = offset
	page.Limit = limit

	return &page
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if len(q.Sort) > 0 {
		values.Set("sort", strings.Join(q.Sort, ","))
	}

	for field, value := range q.Filter {
		values.Set("filter["+field+"]", value)
	}

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	if len(q.Expand) > 0 {
		values.Set("expand", strings.Join(q.Expand, ","))
	}

	if q.Q != "" {
		values.Set("q", q.Q)
	}

	return values
}

// ToMap converts the parameters to the map form consumed by the dispatch
// pipeline's URI builder.
func (q *QueryParams) ToMap() map[string]interface{} {
	if q == nil {
		return nil
	}

	values := q.ToValues()
	params := make(map[string]interface{}, len(values))

	for key := range values {
		params[key] = values.Get(key)
	}

	return params
}
