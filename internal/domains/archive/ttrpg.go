package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type Ttrpg struct {
	model.BaseEntity
	Title    string         `json:"title"`
	System   string         `json:"system,omitempty"`
	Role     string         `json:"role,omitempty"`
	Status   CampaignStatus `json:"status"`
	ImageURL string         `json:"imageUrl,omitempty"`
}

func (t *Ttrpg) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.Status, validation.Required,
			validation.In(CampaignPlanned, CampaignOngoing, CampaignFinished, CampaignAbandoned)),
	)
}

func TtrpgMapping() repository.Mapping[*Ttrpg] {
	return repository.Mapping[*Ttrpg]{
		Table:         "ttrpgs",
		Columns:       []string{"title", "system", "role", "status", "image_url"},
		SearchColumns: []string{"title", "system"},
		Sortable: map[string]string{
			"title":  "title",
			"system": "system",
			"status": "status",
		},
		New: func() *Ttrpg { return &Ttrpg{} },
		Args: func(t *Ttrpg) []any {
			return []any{t.Title, t.System, t.Role, t.Status, t.ImageURL}
		},
		Fields: func(t *Ttrpg) []any {
			return []any{&t.Title, &t.System, &t.Role, &t.Status, &t.ImageURL}
		},
	}
}
