package provider

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogarchive-backend/internal/shared/result"
)

type fakeProvider struct {
	activityType string
	providerType string
	items        map[uuid.UUID]Metadata
}

func (f *fakeProvider) ActivityType() string { return f.activityType }
func (f *fakeProvider) ProviderType() string { return f.providerType }

func (f *fakeProvider) Item(_ context.Context, id uuid.UUID) (result.Result[Metadata], error) {
	meta, ok := f.items[id]
	if !ok {
		return result.NotFound[Metadata]("item not found"), nil
	}
	return result.Ok(meta), nil
}

func (f *fakeProvider) Items(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]Metadata, error) {
	found := make(map[uuid.UUID]Metadata)
	for _, id := range ids {
		if meta, ok := f.items[id]; ok {
			found[id] = meta
		}
	}
	return found, nil
}

func TestGetProviderMatchesActivityType(t *testing.T) {
	movies := &fakeProvider{activityType: ActivityMovie, providerType: ProviderTypeLocal}
	books := &fakeProvider{activityType: ActivityBook, providerType: ProviderTypeLocal}
	factory := NewFactory(movies, books)

	res := factory.GetProvider("Movie")
	require.True(t, res.Success)
	assert.Same(t, movies, res.Data.(*fakeProvider))
}

func TestGetProviderIsCaseInsensitive(t *testing.T) {
	factory := NewFactory(&fakeProvider{activityType: ActivityTvSeries, providerType: ProviderTypeLocal})

	res := factory.GetProvider("tvseries")
	require.True(t, res.Success)
	assert.Equal(t, ActivityTvSeries, res.Data.ActivityType())
}

func TestGetProviderUnknownTypeFailsWithoutPanic(t *testing.T) {
	factory := NewFactory(&fakeProvider{activityType: ActivityMovie, providerType: ProviderTypeLocal})

	res := factory.GetProvider("Podcast")
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Nil(t, res.Data)
}

func TestGetProviderSkipsNonLocalSources(t *testing.T) {
	external := &fakeProvider{activityType: ActivityMovie, providerType: "tmdb"}
	local := &fakeProvider{activityType: ActivityMovie, providerType: ProviderTypeLocal}
	factory := NewFactory(external, local)

	res := factory.GetProvider("Movie")
	require.True(t, res.Success)
	assert.Same(t, local, res.Data.(*fakeProvider))
}

func TestBatchLookupOmitsMissingIDs(t *testing.T) {
	known := uuid.New()
	fake := &fakeProvider{
		activityType: ActivityBook,
		providerType: ProviderTypeLocal,
		items:        map[uuid.UUID]Metadata{known: {Title: "Dune"}},
	}

	found, err := fake.Items(context.Background(), []uuid.UUID{known, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dune", found[known].Title)
}
