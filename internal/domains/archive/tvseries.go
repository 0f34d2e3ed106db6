package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type TvSeries struct {
	model.BaseEntity
	Title    string      `json:"title"`
	Seasons  int         `json:"seasons,omitempty"`
	Rating   int         `json:"rating"`
	Status   WatchStatus `json:"status"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

func (t *TvSeries) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.Seasons, validation.Min(0)),
		validation.Field(&t.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&t.Status, validation.Required,
			validation.In(WatchPlanned, WatchWatching, WatchCompleted, WatchDropped)),
	)
}

func TvSeriesMapping() repository.Mapping[*TvSeries] {
	return repository.Mapping[*TvSeries]{
		Table:         "tv_series",
		Columns:       []string{"title", "seasons", "rating", "status", "image_url"},
		SearchColumns: []string{"title"},
		Sortable: map[string]string{
			"title":   "title",
			"seasons": "seasons",
			"rating":  "rating",
			"status":  "status",
		},
		New: func() *TvSeries { return &TvSeries{} },
		Args: func(t *TvSeries) []any {
			return []any{t.Title, t.Seasons, t.Rating, t.Status, t.ImageURL}
		},
		Fields: func(t *TvSeries) []any {
			return []any{&t.Title, &t.Seasons, &t.Rating, &t.Status, &t.ImageURL}
		},
	}
}
