// Package provider resolves title and image metadata for polymorphic archive
// item references. Features that point at "some archive item" by id plus
// activity type go through the factory instead of knowing each family's table.
package provider

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"blogarchive-backend/internal/shared/result"
)

// Activity type tags carried by polymorphic references.
const (
	ActivityMovie    = "Movie"
	ActivityBook     = "Book"
	ActivityGame     = "Game"
	ActivityAnime    = "Anime"
	ActivityMusic    = "Music"
	ActivityTvSeries = "TvSeries"
	ActivityQuote    = "Quote"
	ActivityTtrpg    = "Ttrpg"
)

// ProviderTypeLocal marks providers backed by our own database. External
// sources (TMDB, IGDB and the like) would register under their own type.
const ProviderTypeLocal = "local"

type Metadata struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Provider interface {
	ActivityType() string
	ProviderType() string

	// Item resolves a single reference. A missing or soft-deleted row is a
	// failed Result, not an error.
	Item(ctx context.Context, id uuid.UUID) (result.Result[Metadata], error)

	// Items resolves many references at once. Ids with no matching row are
	// simply absent from the returned map.
	Items(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Metadata, error)
}

type Factory struct {
	providers []Provider
}

func NewFactory(providers ...Provider) *Factory {
	return &Factory{providers: providers}
}

// GetProvider picks the local provider for the given activity type. No match
// is a failed Result so callers can surface it as a plain 404.
func (f *Factory) GetProvider(activityType string) result.Result[Provider] {
	for _, p := range f.providers {
		if strings.EqualFold(p.ActivityType(), activityType) && p.ProviderType() == ProviderTypeLocal {
			return result.Ok(p)
		}
	}
	return result.NotFound[Provider]("no provider registered for activity type " + activityType)
}
