// Package spotlight resolves the homepage's featured archive reference. A
// spotlight is an arbitrary archive item referenced by id plus activity type;
// resolution goes through the provider factory and is cached in Redis until
// the frontend revalidates the tag.
package spotlight

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogarchive-backend/internal/domains/archive/provider"
	"blogarchive-backend/internal/shared/result"
	"blogarchive-backend/pkg/cache"
	"blogarchive-backend/pkg/logger"
)

const cacheTTL = 15 * time.Minute

type Spotlight struct {
	ID           uuid.UUID         `json:"id"`
	ActivityType string            `json:"activityType"`
	Metadata     provider.Metadata `json:"metadata"`
}

type Service interface {
	Get(ctx context.Context, activityType string, id uuid.UUID) (result.Result[Spotlight], error)
	GetMany(ctx context.Context, activityType string, ids []uuid.UUID) (result.Result[[]Spotlight], error)
	Revalidate(ctx context.Context, activityType string) (result.Result[any], error)
}

type service struct {
	factory *provider.Factory
	cache   cache.Cache
}

func NewService(factory *provider.Factory, c cache.Cache) Service {
	return &service{factory: factory, cache: c}
}

func cacheKey(activityType string, id uuid.UUID) string {
	return "spotlight:" + strings.ToLower(activityType) + ":" + id.String()
}

func (s *service) Get(ctx context.Context, activityType string, id uuid.UUID) (result.Result[Spotlight], error) {
	key := cacheKey(activityType, id)

	var cached Spotlight
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		// A broken cache degrades to a database lookup.
		logger.Warn("spotlight cache read failed", err)
	}
	if hit {
		return result.Ok(cached), nil
	}

	provRes := s.factory.GetProvider(activityType)
	if !provRes.Success {
		return result.Fail[Spotlight](provRes.StatusCode, provRes.Message), nil
	}

	metaRes, err := provRes.Data.Item(ctx, id)
	if err != nil {
		return result.Result[Spotlight]{}, err
	}
	if !metaRes.Success {
		return result.Fail[Spotlight](metaRes.StatusCode, metaRes.Message), nil
	}

	item := Spotlight{ID: id, ActivityType: activityType, Metadata: metaRes.Data}
	if err := s.cache.Set(ctx, key, item, cacheTTL); err != nil {
		logger.Warn("spotlight cache write failed", err)
	}
	return result.Ok(item), nil
}

func (s *service) GetMany(ctx context.Context, activityType string, ids []uuid.UUID) (result.Result[[]Spotlight], error) {
	provRes := s.factory.GetProvider(activityType)
	if !provRes.Success {
		return result.Fail[[]Spotlight](provRes.StatusCode, provRes.Message), nil
	}

	found, err := provRes.Data.Items(ctx, ids)
	if err != nil {
		return result.Result[[]Spotlight]{}, err
	}

	items := make([]Spotlight, 0, len(found))
	for _, id := range ids {
		meta, ok := found[id]
		if !ok {
			continue
		}
		items = append(items, Spotlight{ID: id, ActivityType: activityType, Metadata: meta})
	}
	return result.Ok(items), nil
}

// Revalidate drops every cached spotlight for one activity type. Called by
// the frontend after admin edits.
func (s *service) Revalidate(ctx context.Context, activityType string) (result.Result[any], error) {
	provRes := s.factory.GetProvider(activityType)
	if !provRes.Success {
		return result.Fail[any](provRes.StatusCode, provRes.Message), nil
	}

	pattern := "spotlight:" + strings.ToLower(activityType) + ":*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		return result.Result[any]{}, err
	}
	return result.OkMessage[any]("spotlight cache revalidated"), nil
}
