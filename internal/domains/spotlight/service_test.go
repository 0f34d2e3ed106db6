package spotlight

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogarchive-backend/internal/domains/archive/provider"
	"blogarchive-backend/internal/shared/result"
)

type mapCache struct {
	values map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

func (c *mapCache) DeletePattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.values {
		if strings.HasPrefix(key, prefix) {
			delete(c.values, key)
		}
	}
	return nil
}

func (c *mapCache) Ping(context.Context) error { return nil }

type countingProvider struct {
	activityType string
	items        map[uuid.UUID]provider.Metadata
	lookups      int
}

func (p *countingProvider) ActivityType() string { return p.activityType }
func (p *countingProvider) ProviderType() string { return provider.ProviderTypeLocal }

func (p *countingProvider) Item(_ context.Context, id uuid.UUID) (result.Result[provider.Metadata], error) {
	p.lookups++
	meta, ok := p.items[id]
	if !ok {
		return result.NotFound[provider.Metadata]("item not found"), nil
	}
	return result.Ok(meta), nil
}

func (p *countingProvider) Items(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]provider.Metadata, error) {
	p.lookups++
	found := make(map[uuid.UUID]provider.Metadata)
	for _, id := range ids {
		if meta, ok := p.items[id]; ok {
			found[id] = meta
		}
	}
	return found, nil
}

func TestGetCachesResolvedSpotlight(t *testing.T) {
	id := uuid.New()
	movies := &countingProvider{
		activityType: provider.ActivityMovie,
		items:        map[uuid.UUID]provider.Metadata{id: {Title: "Solaris", ImageURL: "https://img/solaris.jpg"}},
	}
	svc := NewService(provider.NewFactory(movies), newMapCache())
	ctx := context.Background()

	first, err := svc.Get(ctx, "Movie", id)
	require.NoError(t, err)
	require.True(t, first.Success)
	assert.Equal(t, "Solaris", first.Data.Metadata.Title)

	second, err := svc.Get(ctx, "Movie", id)
	require.NoError(t, err)
	require.True(t, second.Success)
	assert.Equal(t, first.Data, second.Data)

	assert.Equal(t, 1, movies.lookups, "second read must come from cache")
}

func TestGetUnknownActivityType(t *testing.T) {
	svc := NewService(provider.NewFactory(), newMapCache())

	res, err := svc.Get(context.Background(), "Podcast", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetMissingItem(t *testing.T) {
	movies := &countingProvider{activityType: provider.ActivityMovie}
	svc := NewService(provider.NewFactory(movies), newMapCache())

	res, err := svc.Get(context.Background(), "Movie", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetManyPreservesRequestOrder(t *testing.T) {
	a, b, missing := uuid.New(), uuid.New(), uuid.New()
	books := &countingProvider{
		activityType: provider.ActivityBook,
		items: map[uuid.UUID]provider.Metadata{
			a: {Title: "Dune"},
			b: {Title: "Hyperion"},
		},
	}
	svc := NewService(provider.NewFactory(books), newMapCache())

	res, err := svc.GetMany(context.Background(), "Book", []uuid.UUID{b, missing, a})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Hyperion", res.Data[0].Metadata.Title)
	assert.Equal(t, "Dune", res.Data[1].Metadata.Title)
}

func TestRevalidateDropsCachedEntries(t *testing.T) {
	id := uuid.New()
	movies := &countingProvider{
		activityType: provider.ActivityMovie,
		items:        map[uuid.UUID]provider.Metadata{id: {Title: "Solaris"}},
	}
	svc := NewService(provider.NewFactory(movies), newMapCache())
	ctx := context.Background()

	_, err := svc.Get(ctx, "Movie", id)
	require.NoError(t, err)

	res, err := svc.Revalidate(ctx, "Movie")
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = svc.Get(ctx, "Movie", id)
	require.NoError(t, err)
	assert.Equal(t, 2, movies.lookups, "revalidation must force a fresh lookup")
}
