// Package listing holds the client-side state of paginated table pages: page
// link construction and the confirm-then-remove delete flow. Rows are
// server-owned; after a mutation the page is re-fetched, the only local edit
// is the optimistic removal of a row whose delete was confirmed.
package listing

import (
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/client"
)

// List is one rendered page of a table.
type List[T any] struct {
	Items []T
	Meta  client.Pagination
	Query url.Values // current query string of the page
}

// New builds a list page. The query is copied so later edits to the caller's
// values do not leak in.
func New[T any](items []T, meta client.Pagination, query url.Values) *List[T] {
	copied := url.Values{}
	for key, values := range query {
		copied[key] = append([]string(nil), values...)
	}
	return &List[T]{
		Items: items,
		Meta:  meta,
		Query: copied,
	}
}

// PageLink builds the query string for a page link: the current query values
// with page overwritten.
func (l *List[T]) PageLink(page int) string {
	query := url.Values{}
	for key, values := range l.Query {
		query[key] = append([]string(nil), values...)
	}
	query.Set("page", strconv.Itoa(page))
	return query.Encode()
}

// HasPrev reports whether a previous page exists.
func (l *List[T]) HasPrev() bool {
	return l.Meta.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (l *List[T]) HasNext() bool {
	return l.Meta.CurrentPage < l.Meta.LastPage
}

// RequestDelete opens the confirmation step for one row. Nil when the index
// is out of range.
func (l *List[T]) RequestDelete(index int) *PendingDelete[T] {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return &PendingDelete[T]{list: l, index: index}
}

// PendingDelete is a delete awaiting the user's confirmation.
type PendingDelete[T any] struct {
	list  *List[T]
	index int
	done  bool
}

// Confirm removes exactly the requested row and adjusts the total. The
// second confirmation of the same request is a no-op.
func (p *PendingDelete[T]) Confirm() bool {
	if p.done || p.index >= len(p.list.Items) {
		return false
	}
	p.done = true
	p.list.Items = append(p.list.Items[:p.index], p.list.Items[p.index+1:]...)
	if p.list.Meta.Total > 0 {
		p.list.Meta.Total--
	}
	return true
}

// Cancel dismisses the confirmation leaving the list untouched.
func (p *PendingDelete[T]) Cancel() {
	p.done = true
}
