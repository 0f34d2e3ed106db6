package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/result"
	"blogarchive-backend/pkg/logger"
)

// Dispatcher hands email events to the background queue. Enqueue failures are
// logged, never surfaced; losing a notification must not fail the request.
type Dispatcher interface {
	EnqueueEmailEvent(ctx context.Context, event EmailEvent) error
}

type Service interface {
	CreateMessage(ctx context.Context, req CreateMessageRequest) (result.Result[*ContactMessage], error)
	ListMessages(ctx context.Context, params query.ListParams) (result.Result[query.Page[*ContactMessage]], error)
	MarkRead(ctx context.Context, id uuid.UUID) (result.Result[*ContactMessage], error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (result.Result[any], error)

	Subscribe(ctx context.Context, req SubscribeRequest) (result.Result[*Subscriber], error)
	ListSubscribers(ctx context.Context, params query.ListParams) (result.Result[query.Page[*Subscriber]], error)
	Unsubscribe(ctx context.Context, id uuid.UUID) (result.Result[any], error)
}

type service struct {
	scope       repository.ScopeFactory
	messages    repository.Mapping[*ContactMessage]
	subscribers repository.Mapping[*Subscriber]
	dispatcher  Dispatcher
}

func NewService(scope repository.ScopeFactory, dispatcher Dispatcher) Service {
	return &service{
		scope:       scope,
		messages:    MessageMapping(),
		subscribers: SubscriberMapping(),
		dispatcher:  dispatcher,
	}
}

func (s *service) CreateMessage(ctx context.Context, req CreateMessageRequest) (result.Result[*ContactMessage], error) {
	var res result.Result[*ContactMessage]

	if err := req.Validate(); err != nil {
		return result.BadRequest[*ContactMessage]("invalid contact message", err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	msg := &ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := repository.For(uow, s.messages).Add(ctx, msg); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}

	if s.dispatcher != nil {
		event := EmailEvent{
			Kind:    EmailKindContactReceived,
			To:      msg.Email,
			Subject: "We received your message",
			Body:    fmt.Sprintf("Hi %s, thanks for reaching out. We'll get back to you soon.", msg.Name),
		}
		if err := s.dispatcher.EnqueueEmailEvent(ctx, event); err != nil {
			logger.Warn("enqueue contact email failed", err)
		}
	}

	return result.Created(msg), nil
}

func (s *service) ListMessages(ctx context.Context, params query.ListParams) (result.Result[query.Page[*ContactMessage]], error) {
	var res result.Result[query.Page[*ContactMessage]]

	uow := s.scope()
	defer uow.Discard()

	q := query.NewListQuery(params)
	items, total, err := repository.For(uow, s.messages).Find(ctx, q)
	if err != nil {
		return res, fmt.Errorf("list contact messages: %w", err)
	}

	return result.Ok(query.Page[*ContactMessage]{
		Items:    items,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PageSize,
	}), nil
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) (result.Result[*ContactMessage], error) {
	var res result.Result[*ContactMessage]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.messages)
	msg, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[*ContactMessage]("contact message not found"), nil
		}
		return res, err
	}

	if msg.IsRead {
		return result.Ok(msg), nil
	}

	msg.IsRead = true
	if err := repo.Update(ctx, msg); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.Ok(msg), nil
}

func (s *service) DeleteMessage(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	return s.softDelete(ctx, id, "contact message")
}

func (s *service) Subscribe(ctx context.Context, req SubscribeRequest) (result.Result[*Subscriber], error) {
	var res result.Result[*Subscriber]

	if err := req.Validate(); err != nil {
		return result.BadRequest[*Subscriber]("invalid subscription", err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	sub := &Subscriber{Email: req.Email}
	if err := repository.For(uow, s.subscribers).Add(ctx, sub); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return result.Fail[*Subscriber](409, "email already subscribed"), nil
		}
		return res, err
	}

	if s.dispatcher != nil {
		event := EmailEvent{
			Kind:    EmailKindSubscribed,
			To:      sub.Email,
			Subject: "Subscription confirmed",
			Body:    "You're on the list. New articles will land in your inbox.",
		}
		if err := s.dispatcher.EnqueueEmailEvent(ctx, event); err != nil {
			logger.Warn("enqueue subscription email failed", err)
		}
	}

	return result.Created(sub), nil
}

func (s *service) ListSubscribers(ctx context.Context, params query.ListParams) (result.Result[query.Page[*Subscriber]], error) {
	var res result.Result[query.Page[*Subscriber]]

	uow := s.scope()
	defer uow.Discard()

	q := query.NewListQuery(params)
	items, total, err := repository.For(uow, s.subscribers).Find(ctx, q)
	if err != nil {
		return res, fmt.Errorf("list subscribers: %w", err)
	}

	return result.Ok(query.Page[*Subscriber]{
		Items:    items,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PageSize,
	}), nil
}

func (s *service) Unsubscribe(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.subscribers)
	sub, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any]("subscriber not found"), nil
		}
		return res, err
	}

	if err := repo.SoftDelete(ctx, sub); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any]("unsubscribed"), nil
}

func (s *service) softDelete(ctx context.Context, id uuid.UUID, label string) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.messages)
	msg, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any](label + " not found"), nil
		}
		return res, err
	}

	if err := repo.SoftDelete(ctx, msg); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any](label + " deleted"), nil
}
