package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type Movie struct {
	model.BaseEntity
	Title    string      `json:"title"`
	Director string      `json:"director,omitempty"`
	Year     int         `json:"year,omitempty"`
	Rating   int         `json:"rating"`
	Status   WatchStatus `json:"status"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

func (m *Movie) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&m.Status, validation.Required,
			validation.In(WatchPlanned, WatchWatching, WatchCompleted, WatchDropped)),
	)
}

func MovieMapping() repository.Mapping[*Movie] {
	return repository.Mapping[*Movie]{
		Table:         "movies",
		Columns:       []string{"title", "director", "year", "rating", "status", "image_url"},
		SearchColumns: []string{"title", "director"},
		Sortable: map[string]string{
			"title":  "title",
			"year":   "year",
			"rating": "rating",
			"status": "status",
		},
		New: func() *Movie { return &Movie{} },
		Args: func(m *Movie) []any {
			return []any{m.Title, m.Director, m.Year, m.Rating, m.Status, m.ImageURL}
		},
		Fields: func(m *Movie) []any {
			return []any{&m.Title, &m.Director, &m.Year, &m.Rating, &m.Status, &m.ImageURL}
		},
	}
}
