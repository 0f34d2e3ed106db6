package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type Music struct {
	model.BaseEntity
	Title    string       `json:"title"`
	Artist   string       `json:"artist,omitempty"`
	Album    string       `json:"album,omitempty"`
	Rating   int          `json:"rating"`
	Status   ListenStatus `json:"status"`
	ImageURL string       `json:"imageUrl,omitempty"`
}

func (m *Music) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&m.Status, validation.Required,
			validation.In(ListenQueued, ListenListening, ListenFavorite, ListenArchived)),
	)
}

func MusicMapping() repository.Mapping[*Music] {
	return repository.Mapping[*Music]{
		Table:         "musics",
		Columns:       []string{"title", "artist", "album", "rating", "status", "image_url"},
		SearchColumns: []string{"title", "artist", "album"},
		Sortable: map[string]string{
			"title":  "title",
			"artist": "artist",
			"rating": "rating",
			"status": "status",
		},
		New: func() *Music { return &Music{} },
		Args: func(m *Music) []any {
			return []any{m.Title, m.Artist, m.Album, m.Rating, m.Status, m.ImageURL}
		},
		Fields: func(m *Music) []any {
			return []any{&m.Title, &m.Artist, &m.Album, &m.Rating, &m.Status, &m.ImageURL}
		},
	}
}
