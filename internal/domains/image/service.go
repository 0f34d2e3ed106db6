package image

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/result"
)

type Service interface {
	List(ctx context.Context, params query.ListParams) (result.Result[query.Page[*Image]], error)
	GetByID(ctx context.Context, id uuid.UUID) (result.Result[*Image], error)
	Create(ctx context.Context, req CreateImageRequest) (result.Result[*Image], error)
	Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error)
}

type service struct {
	scope   repository.ScopeFactory
	mapping repository.Mapping[*Image]
}

func NewService(scope repository.ScopeFactory) Service {
	return &service{scope: scope, mapping: Mapping()}
}

func (s *service) List(ctx context.Context, params query.ListParams) (result.Result[query.Page[*Image]], error) {
	var res result.Result[query.Page[*Image]]

	uow := s.scope()
	defer uow.Discard()

	q := query.NewListQuery(params)
	items, total, err := repository.For(uow, s.mapping).Find(ctx, q)
	if err != nil {
		return res, fmt.Errorf("list images: %w", err)
	}

	return result.Ok(query.Page[*Image]{
		Items:    items,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PageSize,
	}), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (result.Result[*Image], error) {
	uow := s.scope()
	defer uow.Discard()

	img, err := repository.For(uow, s.mapping).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[*Image]("image not found"), nil
		}
		return result.Result[*Image]{}, err
	}
	return result.Ok(img), nil
}

func (s *service) Create(ctx context.Context, req CreateImageRequest) (result.Result[*Image], error) {
	var res result.Result[*Image]

	if err := req.Validate(); err != nil {
		return result.BadRequest[*Image]("invalid image", err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	img := &Image{FileName: req.FileName, URL: req.URL, AltText: req.AltText}
	if err := repository.For(uow, s.mapping).Add(ctx, img); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.Created(img), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	img, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any]("image not found"), nil
		}
		return res, err
	}

	if err := repo.SoftDelete(ctx, img); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any]("image deleted"), nil
}
