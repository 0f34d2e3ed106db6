package archive

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

func newMovieService() Service[*Movie] {
	scope := repository.MemoryScope(repository.NewMemoryStore())
	return NewService(scope, MovieMapping(), "movie")
}

func TestMovieCRUD(t *testing.T) {
	svc := newMovieService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &Movie{
		Title:    "Stalker",
		Director: "Andrei Tarkovsky",
		Year:     1979,
		Rating:   10,
		Status:   WatchCompleted,
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, http.StatusCreated, created.StatusCode)
	assert.NotEqual(t, uuid.Nil, created.Data.ID)

	got, err := svc.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, got.Success)
	assert.Equal(t, "Stalker", got.Data.Title)

	got.Data.Rating = 9
	updated, err := svc.Update(ctx, got.Data)
	require.NoError(t, err)
	require.True(t, updated.Success)
	assert.Equal(t, 9, updated.Data.Rating)

	deleted, err := svc.Delete(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, deleted.Success)

	missing, err := svc.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestMovieValidation(t *testing.T) {
	svc := newMovieService()
	ctx := context.Background()

	res, err := svc.Create(ctx, &Movie{Status: WatchPlanned})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = svc.Create(ctx, &Movie{Title: "Alien", Status: "bingeing"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = svc.Create(ctx, &Movie{Title: "Alien", Status: WatchPlanned, Rating: 11})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMovieListSortsByAllowListedField(t *testing.T) {
	svc := newMovieService()
	ctx := context.Background()

	for _, m := range []*Movie{
		{Title: "B Movie", Rating: 5, Status: WatchPlanned},
		{Title: "A Movie", Rating: 9, Status: WatchCompleted},
		{Title: "C Movie", Rating: 7, Status: WatchWatching},
	} {
		res, err := svc.Create(ctx, m)
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	res, err := svc.List(ctx, query.ListParams{Page: 1, PageSize: 10, SortBy: "rating", SortOrder: "asc"})
	require.NoError(t, err)
	require.Equal(t, 3, res.Data.Total)
	assert.Equal(t, 5, res.Data.Items[0].Rating)
	assert.Equal(t, 9, res.Data.Items[2].Rating)
}

func TestQuoteHasNoStatus(t *testing.T) {
	scope := repository.MemoryScope(repository.NewMemoryStore())
	svc := NewService(scope, QuoteMapping(), "quote")
	ctx := context.Background()

	res, err := svc.Create(ctx, &Quote{Text: "Simplicity is complicated.", Author: "Rob Pike"})
	require.NoError(t, err)
	require.True(t, res.Success)

	empty, err := svc.Create(ctx, &Quote{Author: "Nobody"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, empty.StatusCode)
}

func TestStatusEnumsClosedSets(t *testing.T) {
	assert.True(t, WatchWatching.Valid())
	assert.False(t, WatchStatus("paused").Valid())
	assert.True(t, ReadingReading.Valid())
	assert.False(t, ReadingStatus("skimming").Valid())
	assert.True(t, GamePlaying.Valid())
	assert.True(t, ListenFavorite.Valid())
	assert.False(t, ListenStatus("muted").Valid())
	assert.True(t, CampaignOngoing.Valid())
	assert.False(t, CampaignStatus("hiatus").Valid())
}
