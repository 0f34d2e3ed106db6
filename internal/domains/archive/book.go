package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type Book struct {
	model.BaseEntity
	Title    string        `json:"title"`
	Author   string        `json:"author,omitempty"`
	Year     int           `json:"year,omitempty"`
	Rating   int           `json:"rating"`
	Status   ReadingStatus `json:"status"`
	ImageURL string        `json:"imageUrl,omitempty"`
}

func (b *Book) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&b.Rating, validation.Min(0), validation.Max(10)),
		validation.Field(&b.Status, validation.Required,
			validation.In(ReadingPlanned, ReadingReading, ReadingCompleted, ReadingDropped)),
	)
}

func BookMapping() repository.Mapping[*Book] {
	return repository.Mapping[*Book]{
		Table:         "books",
		Columns:       []string{"title", "author", "year", "rating", "status", "image_url"},
		SearchColumns: []string{"title", "author"},
		Sortable: map[string]string{
			"title":  "title",
			"author": "author",
			"year":   "year",
			"rating": "rating",
			"status": "status",
		},
		New: func() *Book { return &Book{} },
		Args: func(b *Book) []any {
			return []any{b.Title, b.Author, b.Year, b.Rating, b.Status, b.ImageURL}
		},
		Fields: func(b *Book) []any {
			return []any{&b.Title, &b.Author, &b.Year, &b.Rating, &b.Status, &b.ImageURL}
		},
	}
}
