// Package view holds the in-memory controllers that sit between the REPL
// and the API client: a generic collection view-model tracking
// loading/error/data state, and a form buffer for one in-progress
// create-or-edit.
package view

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mribeiro/bibliocli/internal/client/api"
)

// State of a collection view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultPageSize matches the backend's default for paged endpoints.
const DefaultPageSize = 10

// Lister is the list side of a remote resource; api.Resource satisfies it.
type Lister[T any] interface {
	List(ctx context.Context, filters url.Values) (api.Page[T], error)
}

// Collection drives one remote collection. It always reloads the full
// collection after a mutation instead of patching the in-memory slice:
// fields like available-copy counts are server-derived and a local patch
// would drift from truth. One extra round trip buys correctness.
type Collection[T any] struct {
	lister Lister[T]

	state      State
	items      []T
	total      int64
	totalPages int
	errMsg     string

	// client-held cursor state
	paging    bool
	page      int
	pageSize  int
	searchKey string
	search    string
	filters   url.Values
}

// Option configures a Collection at construction time.
type Option[T any] func(*Collection[T])

// WithSearch enables a free-text filter sent under the given query
// parameter name (the backend uses "titulo" for books).
func WithSearch[T any](param string) Option[T] {
	return func(c *Collection[T]) { c.searchKey = param }
}

// WithPaging enables page/size query parameters on list requests.
func WithPaging[T any](pageSize int) Option[T] {
	return func(c *Collection[T]) {
		c.paging = true
		if pageSize > 0 {
			c.pageSize = pageSize
		}
	}
}

// WithFilter pins an opaque filter pair on every list request.
func WithFilter[T any](key, value string) Option[T] {
	return func(c *Collection[T]) { c.filters.Set(key, value) }
}

func NewCollection[T any](lister Lister[T], opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		lister:   lister,
		state:    StateIdle,
		items:    []T{},
		pageSize: DefaultPageSize,
		filters:  url.Values{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection[T]) State() State    { return c.state }
func (c *Collection[T]) Items() []T      { return c.items }
func (c *Collection[T]) Total() int64    { return c.total }
func (c *Collection[T]) TotalPages() int { return c.totalPages }
func (c *Collection[T]) Err() string     { return c.errMsg }
func (c *Collection[T]) Page() int       { return c.page }
func (c *Collection[T]) PageSize() int   { return c.pageSize }
func (c *Collection[T]) Search() string  { return c.search }

// SetSearch replaces the search term. A changed term resets the cursor to
// the first page so the view never shows page N of a now-shorter result.
func (c *Collection[T]) SetSearch(term string) {
	if term == c.search {
		return
	}
	c.search = term
	c.page = 0
}

// SetPageSize changes the page size and resets to the first page.
func (c *Collection[T]) SetPageSize(n int) {
	if n <= 0 || n == c.pageSize {
		return
	}
	c.pageSize = n
	c.page = 0
}

// SetPage moves the cursor. Negative pages clamp to 0.
func (c *Collection[T]) SetPage(n int) {
	if n < 0 {
		n = 0
	}
	c.page = n
}

// SetFilter replaces an opaque filter pair (empty value removes it) and
// resets the cursor, like any other dependent-filter change.
func (c *Collection[T]) SetFilter(key, value string) {
	if value == "" {
		c.filters.Del(key)
	} else {
		c.filters.Set(key, value)
	}
	c.page = 0
}

func (c *Collection[T]) query() url.Values {
	q := url.Values{}
	for k, vs := range c.filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if c.searchKey != "" && c.search != "" {
		q.Set(c.searchKey, c.search)
	}
	if c.paging {
		q.Set("page", strconv.Itoa(c.page))
		q.Set("size", strconv.Itoa(c.pageSize))
	}
	return q
}

// Reload enters Loading, clears the previous error, and issues one list
// request. On success the response replaces the items wholesale; on
// failure the view ends Failed with the backend's message and an empty
// item fallback. A reload requested while one is already in flight is
// skipped: overlapping reloads per view instance are not allowed.
func (c *Collection[T]) Reload(ctx context.Context) error {
	if c.state == StateLoading {
		return nil
	}
	c.state = StateLoading
	c.errMsg = ""

	page, err := c.lister.List(ctx, c.query())
	if err != nil {
		c.state = StateFailed
		c.errMsg = api.Message(err)
		c.items = []T{}
		c.total = 0
		c.totalPages = 0
		return err
	}

	c.items = page.Content
	if page.Paged {
		c.total = page.TotalElements
		c.totalPages = page.TotalPages
	} else {
		c.total = int64(len(page.Content))
		c.totalPages = 1
	}
	c.state = StateLoaded
	return nil
}
