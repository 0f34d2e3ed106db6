package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
)

type ContactMessage struct {
	model.BaseEntity
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
	IsRead  bool   `json:"isRead"`
}

type Subscriber struct {
	model.BaseEntity
	Email string `json:"email"`
}

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Subject, validation.Length(0, 200)),
		validation.Field(&r.Body, validation.Required, validation.Length(1, 5000)),
	)
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// EmailEvent is the payload queued for the worker whenever a contact message
// arrives or a subscriber joins.
type EmailEvent struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const (
	EmailKindContactReceived = "contact_received"
	EmailKindSubscribed      = "subscribed"
)

func MessageMapping() repository.Mapping[*ContactMessage] {
	return repository.Mapping[*ContactMessage]{
		Table:         "contact_messages",
		Columns:       []string{"name", "email", "subject", "body", "is_read"},
		SearchColumns: []string{"name", "email", "subject"},
		Sortable:      map[string]string{"name": "name", "email": "email"},
		New:           func() *ContactMessage { return &ContactMessage{} },
		Args: func(m *ContactMessage) []any {
			return []any{m.Name, m.Email, m.Subject, m.Body, m.IsRead}
		},
		Fields: func(m *ContactMessage) []any {
			return []any{&m.Name, &m.Email, &m.Subject, &m.Body, &m.IsRead}
		},
	}
}

func SubscriberMapping() repository.Mapping[*Subscriber] {
	return repository.Mapping[*Subscriber]{
		Table:         "subscribers",
		Columns:       []string{"email"},
		SearchColumns: []string{"email"},
		Sortable:      map[string]string{"email": "email"},
		Unique:        []string{"email"},
		New:           func() *Subscriber { return &Subscriber{} },
		Args:          func(s *Subscriber) []any { return []any{s.Email} },
		Fields:        func(s *Subscriber) []any { return []any{&s.Email} },
	}
}
