package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blogarchive-backend/internal/domains/contact"
	"blogarchive-backend/internal/infrastructure/email"
)

// EmailEventHandler consumes queued email events on the worker side.
type EmailEventHandler struct {
	sender email.Sender
}

func NewEmailEventHandler(sender email.Sender) *EmailEventHandler {
	return &EmailEventHandler{sender: sender}
}

func (h *EmailEventHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var event contact.EmailEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal email event payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("kind", event.Kind).
		Str("to", event.To).
		Msg("processing email event")

	if err := h.sender.Send(ctx, event.To, event.Subject, event.Body); err != nil {
		log.Error().Err(err).Str("to", event.To).Msg("failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
