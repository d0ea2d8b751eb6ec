package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Resource is a typed view of one remote collection. All methods issue
// exactly one request through the shared Client.
type Resource[T any] struct {
	c    *Client
	path string
}

// NewResource binds a Resource to a collection path such as "/books".
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// List fetches the collection. Filters are opaque key/value pairs passed
// through as query parameters (pagination, search terms, status flags).
func (r *Resource[T]) List(ctx context.Context, filters url.Values) (Page[T], error) {
	data, err := r.c.do(ctx, http.MethodGet, r.path, filters, nil)
	if err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](data)
}

// Get fetches a single entity by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	data, err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}

// Create posts a new entity and returns the server's copy (with the
// server-assigned id and any server-computed fields).
func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	data, err := r.c.do(ctx, http.MethodPost, r.path, nil, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}

// Update replaces an entity and returns the server's copy.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	data, err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), nil, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}

// Remove deletes an entity. The backend rejects deletion with a conflict
// when the entity is referenced by an active relationship (e.g. a book
// with an open loan); that rejection is surfaced verbatim, never
// reinterpreted.
func (r *Resource[T]) Remove(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
	return err
}

// Action performs a non-CRUD transition. Verb is a path fragment appended
// to the collection path (e.g. "/borrow", "/5/return"); the same error
// taxonomy applies.
func (r *Resource[T]) Action(ctx context.Context, method, verb string, payload any) (T, error) {
	data, err := r.c.do(ctx, method, r.path+verb, nil, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}
