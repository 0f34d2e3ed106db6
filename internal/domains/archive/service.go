package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/model"
	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/result"
)

// Resource is any media family entity. Every family validates itself, so the
// service can stay fully generic.
type Resource interface {
	model.Entity
	Validate() error
}

type Service[T Resource] interface {
	List(ctx context.Context, params query.ListParams) (result.Result[query.Page[T]], error)
	GetByID(ctx context.Context, id uuid.UUID) (result.Result[T], error)
	Create(ctx context.Context, item T) (result.Result[T], error)
	Update(ctx context.Context, item T) (result.Result[T], error)
	Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error)
}

type service[T Resource] struct {
	scope   repository.ScopeFactory
	mapping repository.Mapping[T]
	label   string
}

// NewService builds a CRUD service for one media family. The label shows up
// in user-facing messages ("movie not found").
func NewService[T Resource](scope repository.ScopeFactory, mapping repository.Mapping[T], label string) Service[T] {
	return &service[T]{scope: scope, mapping: mapping, label: label}
}

func (s *service[T]) List(ctx context.Context, params query.ListParams) (result.Result[query.Page[T]], error) {
	var res result.Result[query.Page[T]]

	uow := s.scope()
	defer uow.Discard()

	q := query.NewListQuery(params)
	items, total, err := repository.For(uow, s.mapping).Find(ctx, q)
	if err != nil {
		return res, fmt.Errorf("list %s: %w", s.mapping.Table, err)
	}

	return result.Ok(query.Page[T]{
		Items:    items,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PageSize,
	}), nil
}

func (s *service[T]) GetByID(ctx context.Context, id uuid.UUID) (result.Result[T], error) {
	var res result.Result[T]

	uow := s.scope()
	defer uow.Discard()

	item, err := repository.For(uow, s.mapping).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[T](s.label + " not found"), nil
		}
		return res, err
	}
	return result.Ok(item), nil
}

func (s *service[T]) Create(ctx context.Context, item T) (result.Result[T], error) {
	var res result.Result[T]

	if err := item.Validate(); err != nil {
		return result.BadRequest[T]("invalid "+s.label, err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	if err := repository.For(uow, s.mapping).Add(ctx, item); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.Created(item), nil
}

func (s *service[T]) Update(ctx context.Context, item T) (result.Result[T], error) {
	var res result.Result[T]

	if err := item.Validate(); err != nil {
		return result.BadRequest[T]("invalid "+s.label, err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	if err := repository.For(uow, s.mapping).Update(ctx, item); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[T](s.label + " not found"), nil
		}
		return res, err
	}
	return result.Ok(item), nil
}

func (s *service[T]) Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any](s.label + " not found"), nil
		}
		return res, err
	}

	if err := repo.SoftDelete(ctx, item); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any](s.label + " deleted"), nil
}
