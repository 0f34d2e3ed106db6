package article

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
)

func newTestService() Service {
	return NewService(repository.MemoryScope(repository.NewMemoryStore()))
}

func TestCreateGeneratesSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateArticleRequest{
		Title:    "Şeker Yiyelim Çay İçelim Ğ",
		Content:  "body",
		Language: "tr",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "seker-yiyelim-cay-icelim-g", res.Data.Slug)
}

func TestCreateRejectsUnusableTitle(t *testing.T) {
	svc := newTestService()

	res, err := svc.Create(context.Background(), CreateArticleRequest{
		Title:    "!!!",
		Content:  "body",
		Language: "en",
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateArticleRequest{Title: "Same Title", Content: "a", Language: "en"})
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Create(ctx, CreateArticleRequest{Title: "Same  Title", Content: "b", Language: "en"})
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateArticleRequest{Title: "Hello World", Content: "x", Language: "en"})
	require.NoError(t, err)
	require.True(t, created.Success)

	res, err := svc.GetBySlug(ctx, "hello-world")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, created.Data.ID, res.Data.ID)

	missing, err := svc.GetBySlug(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestUpdateRederivesSlugOnTitleChange(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateArticleRequest{Title: "Old Title", Content: "x", Language: "en"})
	require.NoError(t, err)
	require.True(t, created.Success)

	res, err := svc.Update(ctx, created.Data.ID, UpdateArticleRequest{Title: "New Title", Content: "x", Language: "en"})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "new-title", res.Data.Slug)

	// Unchanged title keeps the slug.
	res, err = svc.Update(ctx, created.Data.ID, UpdateArticleRequest{Title: "New Title", Content: "y", Language: "en"})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "new-title", res.Data.Slug)
	assert.Equal(t, "y", res.Data.Content)
}

func TestIncrementViews(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateArticleRequest{Title: "Counted", Content: "x", Language: "en"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res, err := svc.IncrementViews(ctx, created.Data.ID)
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	got, err := svc.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Data.ViewCount)
}

func TestDeleteHidesArticle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateArticleRequest{Title: "Gone Soon", Content: "x", Language: "en"})
	require.NoError(t, err)

	res, err := svc.Delete(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	missing, err := svc.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	list, err := svc.List(ctx, ListArticlesRequest{ListParams: query.ListParams{Page: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.Zero(t, list.Data.Total)
}

func TestListFiltersByLanguage(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateArticleRequest{Title: "Turkish Post", Content: "x", Language: "tr"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateArticleRequest{Title: "English Post", Content: "x", Language: "en"})
	require.NoError(t, err)

	res, err := svc.List(ctx, ListArticlesRequest{
		ListParams: query.ListParams{Page: 1, PageSize: 10},
		Language:   "tr",
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Data.Total)
	assert.Equal(t, "Turkish Post", res.Data.Items[0].Title)
}
