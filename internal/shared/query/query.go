package query

import "strings"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// DefaultSortColumn is the fallback ordering for unknown or absent sortBy.
	DefaultSortColumn = "created_at"
)

// ListParams are the client-supplied list parameters: 1-based page, page size,
// optional free-text search and optional sort field/direction.
type ListParams struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
	SearchTerm string `form:"searchTerm"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
}

// Normalize clamps paging values into a valid range. Pages below 1 become 1.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.SearchTerm = strings.TrimSpace(p.SearchTerm)
	return p
}

// Offset returns the number of rows to skip: (page-1) * pageSize.
func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}

// Ascending reports whether the sort order is ascending. Only "asc"
// (case-insensitive) ascends; anything else descends.
func Ascending(sortOrder string) bool {
	return strings.EqualFold(strings.TrimSpace(sortOrder), "asc")
}

// Direction returns the SQL direction keyword for a sort order value.
func Direction(sortOrder string) string {
	if Ascending(sortOrder) {
		return "ASC"
	}
	return "DESC"
}

// SortColumn resolves a client-supplied sort field through an allow-list of
// field name -> column. Unknown or absent fields fall back to created_at so a
// raw field name never reaches the storage layer.
func SortColumn(sortBy string, allowed map[string]string) string {
	if col, ok := allowed[strings.ToLower(strings.TrimSpace(sortBy))]; ok {
		return col
	}
	return DefaultSortColumn
}

// OrderClause builds a deterministic ORDER BY body, with id as tiebreaker so
// paging over equal keys stays stable.
func OrderClause(sortBy, sortOrder string, allowed map[string]string) string {
	return SortColumn(sortBy, allowed) + " " + Direction(sortOrder) + ", id ASC"
}

// Filter is an equality condition on an allow-listed column. Services build
// filters with literal column names; client input never names a column.
type Filter struct {
	Column string
	Value  any
}

// ListQuery is the composed query plan a repository executes: normalized list
// params plus service-chosen equality filters.
type ListQuery struct {
	Params  ListParams
	Filters []Filter
}

// NewListQuery normalizes params and attaches filters.
func NewListQuery(params ListParams, filters ...Filter) ListQuery {
	return ListQuery{Params: params.Normalize(), Filters: filters}
}

// Page is one page of a list result along with the total row count.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// TotalPages returns the page count for a total, never less than 1.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
