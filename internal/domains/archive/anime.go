package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type Anime struct {
	model.BaseEntity
	Title    string      `json:"title"`
	Studio   string      `json:"studio,omitempty"`
	Episodes int         `json:"episodes,omitempty"`
	Rating   int         `json:"rating"`
	Status   WatchStatus `json:"status"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

func (a *Anime) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.Episodes, validation.Min(0)),
		validation.Field(&a.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&a.Status, validation.Required,
			validation.In(WatchPlanned, WatchWatching, WatchCompleted, WatchDropped)),
	)
}

func AnimeMapping() repository.Mapping[*Anime] {
	return repository.Mapping[*Anime]{
		Table:         "animes",
		Columns:       []string{"title", "studio", "episodes", "rating", "status", "image_url"},
		SearchColumns: []string{"title", "studio"},
		Sortable: map[string]string{
			"title":    "title",
			"episodes": "episodes",
			"rating":   "rating",
			"status":   "status",
		},
		New: func() *Anime { return &Anime{} },
		Args: func(a *Anime) []any {
			return []any{a.Title, a.Studio, a.Episodes, a.Rating, a.Status, a.ImageURL}
		},
		Fields: func(a *Anime) []any {
			return []any{&a.Title, &a.Studio, &a.Episodes, &a.Rating, &a.Status, &a.ImageURL}
		},
	}
}
