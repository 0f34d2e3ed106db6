package category

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
)

func newTestService(relink ArticleRelinker) Service {
	return NewService(repository.MemoryScope(repository.NewMemoryStore()), relink)
}

func TestCreateAndList(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateCategoryRequest{Name: "Programming"})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	list, err := svc.List(ctx, query.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Data.Total)
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateCategoryRequest{Name: "Travel"})
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Create(ctx, CreateCategoryRequest{Name: "Travel"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestEnsureDefaultIsIdempotent(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	first, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, DefaultName, first.Name)

	second, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestDefaultCategoryIsProtected(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	def, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)

	upd, err := svc.Update(ctx, def.ID, UpdateCategoryRequest{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, upd.StatusCode)

	del, err := svc.Delete(ctx, def.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, del.StatusCode)
}

func TestDeleteRelinksArticlesToDefault(t *testing.T) {
	var relinkedFrom, relinkedTo uuid.UUID
	relink := func(_ context.Context, _ repository.UnitOfWork, from, to uuid.UUID) error {
		relinkedFrom, relinkedTo = from, to
		return nil
	}

	svc := newTestService(relink)
	ctx := context.Background()

	def, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)

	created, err := svc.Create(ctx, CreateCategoryRequest{Name: "Doomed"})
	require.NoError(t, err)
	require.True(t, created.Success)

	res, err := svc.Delete(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, created.Data.ID, relinkedFrom)
	assert.Equal(t, def.ID, relinkedTo)

	missing, err := svc.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestUpdateMissingCategory(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Update(context.Background(), uuid.New(), UpdateCategoryRequest{Name: "Whatever"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
