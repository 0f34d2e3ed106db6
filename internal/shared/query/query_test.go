package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsPaging(t *testing.T) {
	p := ListParams{Page: -3, PageSize: 0}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = ListParams{Page: 2, PageSize: 5000}.Normalize()
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, ListParams{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, 0, ListParams{Page: -1, PageSize: 20}.Offset())
}

func TestAscending(t *testing.T) {
	assert.True(t, Ascending("asc"))
	assert.True(t, Ascending("ASC"))
	assert.True(t, Ascending(" Asc "))
	assert.False(t, Ascending("desc"))
	assert.False(t, Ascending(""))
	assert.False(t, Ascending("ascending"))
}

func TestSortColumnAllowList(t *testing.T) {
	allowed := map[string]string{"title": "title", "views": "view_count"}

	assert.Equal(t, "view_count", SortColumn("views", allowed))
	assert.Equal(t, "title", SortColumn(" Title ", allowed))

	// Unknown fields never pass through to storage.
	assert.Equal(t, DefaultSortColumn, SortColumn("view_count; DROP TABLE", allowed))
	assert.Equal(t, DefaultSortColumn, SortColumn("", allowed))
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"title": "title"}
	assert.Equal(t, "title ASC, id ASC", OrderClause("title", "asc", allowed))
	assert.Equal(t, "created_at DESC, id ASC", OrderClause("bogus", "whatever", allowed))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
