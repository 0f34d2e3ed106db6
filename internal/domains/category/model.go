package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

// DefaultName is the reserved "uncategorized" category. It always exists and
// cannot be deleted; articles of a deleted category are relinked to it.
const DefaultName = "Other"

type Category struct {
	model.BaseEntity
	Name string `json:"name"`
}

func (c *Category) IsDefault() bool {
	return c.Name == DefaultName
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

// Mapping binds Category to its table for the generic repository.
func Mapping() repository.Mapping[*Category] {
	return repository.Mapping[*Category]{
		Table:         "categories",
		Columns:       []string{"name"},
		SearchColumns: []string{"name"},
		Sortable:      map[string]string{"name": "name"},
		Unique:        []string{"name"},
		New:           func() *Category { return &Category{} },
		Args:          func(c *Category) []any { return []any{c.Name} },
		Fields:        func(c *Category) []any { return []any{&c.Name} },
	}
}
