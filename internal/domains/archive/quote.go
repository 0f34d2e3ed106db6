package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

// Quote is the one family with no status and no image.
type Quote struct {
	model.BaseEntity
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Source string `json:"source,omitempty"`
}

func (q *Quote) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Text, validation.Required, validation.Length(1, 2000)),
	)
}

func QuoteMapping() repository.Mapping[*Quote] {
	return repository.Mapping[*Quote]{
		Table:         "quotes",
		Columns:       []string{"text", "author", "source"},
		SearchColumns: []string{"text", "author"},
		Sortable:      map[string]string{"author": "author"},
		New:           func() *Quote { return &Quote{} },
		Args:          func(q *Quote) []any { return []any{q.Text, q.Author, q.Source} },
		Fields:        func(q *Quote) []any { return []any{&q.Text, &q.Author, &q.Source} },
	}
}
