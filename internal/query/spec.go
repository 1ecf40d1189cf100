// Package query defines the storage-agnostic list specification shared by
// the aggregation endpoints: page/limit clamping, sort validation and the
// pagination envelope. Storage adapters translate a spec into their own
// query language; nothing here knows about SQL.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Sort directions accepted from clients.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListQuery captures the common listing parameters. Zero values are legal;
// Clamp normalizes them before use.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Parse reads a ListQuery from URL query parameters. Unparsable numbers
// fall back to defaults rather than failing the request.
func Parse(values url.Values) ListQuery {
	q := ListQuery{
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}
	if v, err := strconv.Atoi(values.Get("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil {
		q.Limit = v
	}
	return q.Clamp()
}

// Clamp normalizes page to >=1 and limit to [1,100], applying defaults for
// missing values.
func (q ListQuery) Clamp() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// Offset returns the number of rows to skip for the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// OrderClause resolves the requested sort into a "column direction" pair
// using the adapter-supplied field-to-column table. Unknown fields fall
// back to the default clause, so client input never reaches the store
// unvalidated.
func (q ListQuery) OrderClause(columns map[string]string, fallback string) string {
	column, ok := columns[q.SortBy]
	if !ok {
		return fallback
	}
	direction := "desc"
	if strings.EqualFold(q.SortOrder, OrderAsc) {
		direction = "asc"
	}
	return column + " " + direction
}

// Pagination is the envelope returned alongside every listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes the envelope for a total row count and a clamped
// query. totalPages is ceil(total/limit).
func NewPagination(total int64, q ListQuery) Pagination {
	q = q.Clamp()
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     q.Page < totalPages,
		HasPrev:     q.Page > 1,
	}
}
