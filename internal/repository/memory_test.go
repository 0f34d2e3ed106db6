package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogarchive-backend/internal/shared/model"
	"blogarchive-backend/internal/shared/query"
)

type note struct {
	model.BaseEntity
	Title string
	Code  string
	Rank  int
}

type tag struct {
	model.BaseEntity
	Label string
}

func noteMapping() Mapping[*note] {
	return Mapping[*note]{
		Table:         "notes",
		Columns:       []string{"title", "code", "rank"},
		SearchColumns: []string{"title"},
		Sortable:      map[string]string{"title": "title", "rank": "rank"},
		Unique:        []string{"code"},
		New:           func() *note { return &note{} },
		Args:          func(n *note) []any { return []any{n.Title, n.Code, n.Rank} },
		Fields:        func(n *note) []any { return []any{&n.Title, &n.Code, &n.Rank} },
	}
}

func tagMapping() Mapping[*tag] {
	return Mapping[*tag]{
		Table:   "tags",
		Columns: []string{"label"},
		Unique:  []string{"label"},
		New:     func() *tag { return &tag{} },
		Args:    func(t *tag) []any { return []any{t.Label} },
		Fields:  func(t *tag) []any { return []any{&t.Label} },
	}
}

func seedNotes(t *testing.T, scope ScopeFactory, notes ...*note) {
	t.Helper()
	ctx := context.Background()

	uow := scope()
	defer uow.Discard()

	repo := For(uow, noteMapping())
	for _, n := range notes {
		require.NoError(t, repo.Add(ctx, n))
	}
	require.NoError(t, uow.Commit(ctx))
}

func TestMemoryRepositoryAddAndGet(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	n := &note{Title: "first", Code: "n-1"}
	seedNotes(t, scope, n)

	uow := scope()
	defer uow.Discard()

	got, err := For(uow, noteMapping()).GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemoryRepositoryUncommittedAddIsInvisible(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	uow := scope()
	n := &note{Title: "pending", Code: "n-1"}
	require.NoError(t, For(uow, noteMapping()).Add(ctx, n))

	other := scope()
	_, err := For(other, noteMapping()).GetByID(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	uow.Discard()
	other.Discard()
}

func TestMemoryRepositorySoftDeleteHides(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	n := &note{Title: "doomed", Code: "n-1"}
	seedNotes(t, scope, n)

	uow := scope()
	repo := For(uow, noteMapping())
	require.NoError(t, repo.SoftDelete(ctx, n))
	require.NoError(t, uow.Commit(ctx))

	check := scope()
	defer check.Discard()
	repo = For(check, noteMapping())

	_, err := repo.GetByID(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, total, err := repo.Find(ctx, query.NewListQuery(query.ListParams{Page: 1, PageSize: 10}))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

func TestMemoryRepositoryPaginationPartition(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	all := make([]*note, 0, 25)
	for i := 0; i < 25; i++ {
		all = append(all, &note{Title: fmt.Sprintf("note %02d", i), Code: fmt.Sprintf("n-%d", i), Rank: i})
	}
	seedNotes(t, scope, all...)

	uow := scope()
	defer uow.Discard()
	repo := For(uow, noteMapping())

	seen := make(map[string]bool)
	pageSize := 10
	for page := 1; page <= 3; page++ {
		items, total, err := repo.Find(ctx, query.NewListQuery(query.ListParams{
			Page: page, PageSize: pageSize, SortBy: "rank", SortOrder: "asc",
		}))
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		for _, item := range items {
			assert.False(t, seen[item.Code], "item %s appeared on two pages", item.Code)
			seen[item.Code] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestMemoryRepositorySortAndFallback(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	seedNotes(t, scope,
		&note{Title: "banana", Code: "n-1", Rank: 3},
		&note{Title: "apple", Code: "n-2", Rank: 1},
		&note{Title: "cherry", Code: "n-3", Rank: 2},
	)

	uow := scope()
	defer uow.Discard()
	repo := For(uow, noteMapping())

	items, _, err := repo.Find(ctx, query.NewListQuery(query.ListParams{
		Page: 1, PageSize: 10, SortBy: "title", SortOrder: "asc",
	}))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "apple", items[0].Title)
	assert.Equal(t, "cherry", items[2].Title)

	// Unknown sort field falls back to created_at descending without error.
	items, _, err = repo.Find(ctx, query.NewListQuery(query.ListParams{
		Page: 1, PageSize: 10, SortBy: "no-such-field",
	}))
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestMemoryRepositorySearchTerm(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	seedNotes(t, scope,
		&note{Title: "Intro to Go", Code: "n-1"},
		&note{Title: "Advanced GO patterns", Code: "n-2"},
		&note{Title: "Rust basics", Code: "n-3"},
	)

	uow := scope()
	defer uow.Discard()

	items, total, err := For(uow, noteMapping()).Find(ctx, query.NewListQuery(query.ListParams{
		Page: 1, PageSize: 10, SearchTerm: "go",
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)
}

func TestMemoryUnitOfWorkAtomicAcrossRepositories(t *testing.T) {
	store := NewMemoryStore()
	scope := MemoryScope(store)
	ctx := context.Background()

	existing := &tag{Label: "go"}
	setup := scope()
	require.NoError(t, For(setup, tagMapping()).Add(ctx, existing))
	require.NoError(t, setup.Commit(ctx))

	// Stage a valid note insert plus a tag insert that violates uniqueness.
	uow := scope()
	require.NoError(t, For(uow, noteMapping()).Add(ctx, &note{Title: "orphan", Code: "n-9"}))
	dup := &tag{Label: "go"}
	require.NoError(t, For(uow, tagMapping()).Add(ctx, dup))

	err := uow.Commit(ctx)
	require.ErrorIs(t, err, ErrConflict)
	uow.Discard()

	// Nothing from the failed commit is visible.
	check := scope()
	defer check.Discard()
	_, total, err := For(check, noteMapping()).Find(ctx, query.NewListQuery(query.ListParams{Page: 1, PageSize: 10}))
	require.NoError(t, err)
	assert.Zero(t, total)

	_, tagTotal, err := For(check, tagMapping()).Find(ctx, query.NewListQuery(query.ListParams{Page: 1, PageSize: 10}))
	require.NoError(t, err)
	assert.Equal(t, 1, tagTotal)
}

func TestMemoryUnitOfWorkRepositoryReuse(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())

	uow := scope()
	defer uow.Discard()

	first := For(uow, noteMapping())
	second := For(uow, noteMapping())
	assert.Same(t, first.(*memoryRepository[*note]), second.(*memoryRepository[*note]))
}

func TestMemoryRepositoryUpdateMissing(t *testing.T) {
	scope := MemoryScope(NewMemoryStore())
	ctx := context.Background()

	uow := scope()
	defer uow.Discard()

	ghost := &note{Title: "ghost", Code: "n-404"}
	ghost.EnsureIdentity()
	require.NoError(t, For(uow, noteMapping()).Update(ctx, ghost))
	assert.ErrorIs(t, uow.Commit(ctx), ErrNotFound)
}
