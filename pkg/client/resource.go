package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	headerTotalCount = "X-Total-Count"
	headerLink       = "Link"
)

// ListParams selects a page of a collection.
type ListParams struct {
	Page int
	Size int
	// Sort holds "field,direction" pairs, e.g. "name,asc".
	Sort []string
}

// Paged reports whether the request carries page/size/sort parameters.
// Unsorted requests ask for the server's default page.
func (p ListParams) Paged() bool {
	return len(p.Sort) > 0
}

// Page is one page of a collection together with its pagination metadata.
type Page[T any] struct {
	Items      []T
	TotalItems int
	Links      Links
}

// Resource performs CRUD calls against one entity collection.
type Resource[T Record[T]] struct {
	client *Client
	path   string
}

func NewResource[T Record[T]](c *Client, path string) *Resource[T] {
	return &Resource[T]{
		client: c,
		path:   path,
	}
}

// Path returns the collection path, e.g. "api/movies".
func (r *Resource[T]) Path() string {
	return r.path
}

// FetchList loads one page of the collection.
func (r *Resource[T]) FetchList(ctx context.Context, params ListParams) (Page[T], error) {
	query := url.Values{}
	if params.Paged() {
		query.Set("page", strconv.Itoa(params.Page))
		query.Set("size", strconv.Itoa(params.Size))
		for _, s := range params.Sort {
			query.Add("sort", s)
		}
	}
	query.Set("cacheBuster", strconv.FormatInt(r.client.now().UnixMilli(), 10))

	var items []T
	headers, err := r.client.do(ctx, request{method: http.MethodGet, path: r.path, query: query}, &items)
	if err != nil {
		return Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}

	total := len(items)
	if raw := headers.Get(headerTotalCount); raw != "" {
		total, err = strconv.Atoi(raw)
		if err != nil {
			return Page[T]{}, fmt.Errorf("%w: invalid %s header %q", ErrRequestFailed, headerTotalCount, raw)
		}
	}

	links, err := ParseLinks(headers.Values(headerLink)...)
	if err != nil {
		return Page[T]{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return Page[T]{
		Items:      items,
		TotalItems: total,
		Links:      links,
	}, nil
}

// FetchOne loads a single record.
func (r *Resource[T]) FetchOne(ctx context.Context, id int64) (T, error) {
	var out T
	_, err := r.client.do(ctx, request{method: http.MethodGet, path: r.itemPath(id)}, &out)
	return out, err
}

// Create posts a record without identity and returns the stored version.
func (r *Resource[T]) Create(ctx context.Context, record T) (T, error) {
	var out T
	_, err := r.client.do(ctx, request{method: http.MethodPost, path: r.path, body: record.Clean()}, &out)
	return out, err
}

// Update replaces the record identified by record's id.
func (r *Resource[T]) Update(ctx context.Context, record T) (T, error) {
	return r.save(ctx, http.MethodPut, contentTypeJSON, record)
}

// PartialUpdate sends only the fields set on record.
func (r *Resource[T]) PartialUpdate(ctx context.Context, record T) (T, error) {
	return r.save(ctx, http.MethodPatch, contentTypeMergePatch, record)
}

// Delete removes the record with the given id.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, request{method: http.MethodDelete, path: r.itemPath(id)}, nil)
	return err
}

func (r *Resource[T]) save(ctx context.Context, method, contentType string, record T) (T, error) {
	var out T

	id, ok := record.EntityID()
	if !ok {
		return out, fmt.Errorf("%w: %w", ErrRequestFailed, ErrMissingID)
	}

	_, err := r.client.do(ctx, request{
		method:      method,
		path:        r.itemPath(id),
		body:        record.Clean(),
		contentType: contentType,
	}, &out)

	return out, err
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}
