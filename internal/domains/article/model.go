package article

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
	"blogarchive-backend/internal/shared/query"
)

type Article struct {
	model.BaseEntity
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Slug       string     `json:"slug"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	Language   string     `json:"language"`
	ViewCount  int        `json:"viewCount"`
	ImageID    *uuid.UUID `json:"imageId,omitempty"`
}

type CreateArticleRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Language   string     `json:"language"`
	ImageID    *uuid.UUID `json:"imageId"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Language, validation.Required, validation.Length(2, 8)),
	)
}

type UpdateArticleRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Language   string     `json:"language"`
	ImageID    *uuid.UUID `json:"imageId"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Language, validation.Required, validation.Length(2, 8)),
	)
}

// ListArticlesRequest adds the article-specific filters to the common list
// parameters.
type ListArticlesRequest struct {
	query.ListParams
	CategoryID *uuid.UUID `form:"categoryId"`
	Language   string     `form:"language"`
}

// Mapping binds Article to its table for the generic repository. Sortable is
// the allow-list of client sort fields; anything else falls back to
// created_at descending.
func Mapping() repository.Mapping[*Article] {
	return repository.Mapping[*Article]{
		Table:         "articles",
		Columns:       []string{"title", "content", "slug", "category_id", "language", "view_count", "image_id"},
		SearchColumns: []string{"title"},
		Sortable: map[string]string{
			"title":    "title",
			"category": "category_id",
			"language": "language",
			"views":    "view_count",
		},
		Unique: []string{"slug"},
		New:    func() *Article { return &Article{} },
		Args: func(a *Article) []any {
			return []any{a.Title, a.Content, a.Slug, a.CategoryID, a.Language, a.ViewCount, a.ImageID}
		},
		Fields: func(a *Article) []any {
			return []any{&a.Title, &a.Content, &a.Slug, &a.CategoryID, &a.Language, &a.ViewCount, &a.ImageID}
		},
	}
}
