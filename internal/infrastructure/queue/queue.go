// Package queue wraps the asynq client used to push background work to the
// worker process.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"blogarchive-backend/internal/domains/contact"
)

const TypeEmailEvent = "email:event"

type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

var _ contact.Dispatcher = (*Client)(nil)

func (c *Client) EnqueueEmailEvent(ctx context.Context, event contact.EmailEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal email event: %w", err)
	}

	task := asynq.NewTask(TypeEmailEvent, payload)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue email event: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
