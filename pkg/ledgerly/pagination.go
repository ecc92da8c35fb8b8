package ledgerly

import (
	"context"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/constants"
)

// PageLister fetches one page of a collection. Every service client's List
// method satisfies this shape.
type PageLister interface {
	List(ctx context.Context, params *QueryParams) (*Collection, error)
}

// PageListerFunc adapts a function to the PageLister interface.
type PageListerFunc func(ctx context.Context, params *QueryParams) (*Collection, error)

// List implements PageLister.
func (f PageListerFunc) List(ctx context.Context, params *QueryParams) (*Collection, error) {
	return f(ctx, params)
}

// Paginator walks a collection page by page using offset/limit metadata.
type Paginator struct {
	lister  PageLister
	params  *QueryParams
	offset  int
	limit   int
	total   int
	fetched bool
}

// NewPaginator creates a paginator starting at the offset in params.
func NewPaginator(lister PageLister, params *QueryParams) *Paginator {
	if params == nil {
		params = NewQueryParams()
	}

	limit := params.Limit
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}

	return &Paginator{
		lister: lister,
		params: params,
		offset: params.Offset,
		limit:  limit,
	}
}

// HasNext reports whether another page remains. Before the first fetch it is
// always true.
func (p *Paginator) HasNext() bool {
	if !p.fetched {
		return true
	}

	return p.offset < p.total
}

// NextPage fetches the next page.
func (p *Paginator) NextPage(ctx context.Context) (*Collection, error) {
	if !p.HasNext() {
		return nil, ErrNoMoreItems
	}

	page, err := p.lister.List(ctx, p.params.WithPage(p.offset, p.limit))
	if err != nil {
		return nil, err
	}

	p.fetched = true
	p.total = page.Total
	p.offset += len(page.Items)

	// A short page with no items means the server is done regardless of the
	// advertised total.
	if len(page.Items) == 0 {
		p.total = p.offset
	}

	return page, nil
}

// ItemIterator iterates over collection items across page boundaries.
type ItemIterator struct {
	ctx       context.Context
	paginator *Paginator
	buffer    []Resource
	err       error
}

// NewItemIterator creates an iterator over all items reachable from params.
func NewItemIterator(ctx context.Context, lister PageLister, params *QueryParams) *ItemIterator {
	return &ItemIterator{
		ctx:       ctx,
		paginator: NewPaginator(lister, params),
	}
}

// HasNext reports whether another item is available.
func (it *ItemIterator) HasNext() bool {
	if it.err != nil {
		return false
	}

	for len(it.buffer) == 0 {
		if !it.paginator.HasNext() {
			return false
		}

		page, err := it.paginator.NextPage(it.ctx)
		if err != nil {
			it.err = err

			return false
		}

		it.buffer = page.Items

		if len(page.Items) == 0 {
			return false
		}
	}

	return true
}

// Next returns the next item.
func (it *ItemIterator) Next() (Resource, error) {
	if !it.HasNext() {
		if it.err != nil {
			return nil, it.err
		}

		return nil, ErrNoMoreItems
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All collects every remaining item.
func (it *ItemIterator) All() ([]Resource, error) {
	var items []Resource

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return items, nil
}
