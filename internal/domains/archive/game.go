package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type Game struct {
	model.BaseEntity
	Title    string     `json:"title"`
	Platform string     `json:"platform,omitempty"`
	Year     int        `json:"year,omitempty"`
	Rating   int        `json:"rating"`
	Status   GameStatus `json:"status"`
	ImageURL string     `json:"imageUrl,omitempty"`
}

func (g *Game) Validate() error {
	return validation.ValidateStruct(g,
		validation.Field(&g.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&g.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&g.Status, validation.Required,
			validation.In(GamePlanned, GamePlaying, GameCompleted, GameDropped)),
	)
}

func GameMapping() repository.Mapping[*Game] {
	return repository.Mapping[*Game]{
		Table:         "games",
		Columns:       []string{"title", "platform", "year", "rating", "status", "image_url"},
		SearchColumns: []string{"title", "platform"},
		Sortable: map[string]string{
			"title":  "title",
			"year":   "year",
			"rating": "rating",
			"status": "status",
		},
		New: func() *Game { return &Game{} },
		Args: func(g *Game) []any {
			return []any{g.Title, g.Platform, g.Year, g.Rating, g.Status, g.ImageURL}
		},
		Fields: func(g *Game) []any {
			return []any{&g.Title, &g.Platform, &g.Year, &g.Rating, &g.Status, &g.ImageURL}
		},
	}
}
