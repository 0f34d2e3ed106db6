package image

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

// Image is the metadata row for an uploaded file. The bytes themselves live
// in external storage; this service only tracks the reference.
type Image struct {
	model.BaseEntity
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	AltText  string `json:"altText,omitempty"`
}

type CreateImageRequest struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	AltText  string `json:"altText"`
}

func (r CreateImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.URL, validation.Required, is.URL),
	)
}

func Mapping() repository.Mapping[*Image] {
	return repository.Mapping[*Image]{
		Table:         "images",
		Columns:       []string{"file_name", "url", "alt_text"},
		SearchColumns: []string{"file_name", "alt_text"},
		Sortable:      map[string]string{"filename": "file_name"},
		New:           func() *Image { return &Image{} },
		Args:          func(i *Image) []any { return []any{i.FileName, i.URL, i.AltText} },
		Fields:        func(i *Image) []any { return []any{&i.FileName, &i.URL, &i.AltText} },
	}
}
