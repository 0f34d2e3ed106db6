package category

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/result"
)

// ArticleRelinker moves all articles of one category to another within the
// same unit of work, so the relink commits atomically with the delete.
// Implemented by the article service; injected to avoid a package cycle.
type ArticleRelinker func(ctx context.Context, uow repository.UnitOfWork, from, to uuid.UUID) error

// Service methods return a Result for expected domain outcomes. The error
// return is reserved for unexpected failures and is normalized exactly once,
// by the error middleware at the request boundary.
type Service interface {
	List(ctx context.Context, params query.ListParams) (result.Result[query.Page[*Category]], error)
	GetByID(ctx context.Context, id uuid.UUID) (result.Result[*Category], error)
	Create(ctx context.Context, req CreateCategoryRequest) (result.Result[*Category], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (result.Result[*Category], error)
	Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error)

	// EnsureDefault creates the reserved default category if missing.
	EnsureDefault(ctx context.Context) (*Category, error)
}

type service struct {
	scope   repository.ScopeFactory
	relink  ArticleRelinker
	mapping repository.Mapping[*Category]
}

func NewService(scope repository.ScopeFactory, relink ArticleRelinker) Service {
	return &service{
		scope:   scope,
		relink:  relink,
		mapping: Mapping(),
	}
}

func (s *service) List(ctx context.Context, params query.ListParams) (result.Result[query.Page[*Category]], error) {
	var res result.Result[query.Page[*Category]]

	uow := s.scope()
	defer uow.Discard()

	q := query.NewListQuery(params)
	items, total, err := repository.For(uow, s.mapping).Find(ctx, q)
	if err != nil {
		return res, fmt.Errorf("list categories: %w", err)
	}

	return result.Ok(query.Page[*Category]{
		Items:    items,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PageSize,
	}), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (result.Result[*Category], error) {
	uow := s.scope()
	defer uow.Discard()

	c, err := repository.For(uow, s.mapping).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[*Category]("category not found"), nil
		}
		return result.Result[*Category]{}, err
	}
	return result.Ok(c), nil
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (result.Result[*Category], error) {
	if err := req.Validate(); err != nil {
		return result.BadRequest[*Category]("invalid category", err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	c := &Category{Name: req.Name}
	if err := repository.For(uow, s.mapping).Add(ctx, c); err != nil {
		return result.Result[*Category]{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return result.Fail[*Category](http.StatusConflict, "a category with this name already exists"), nil
		}
		return result.Result[*Category]{}, err
	}
	return result.Created(c), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (result.Result[*Category], error) {
	var res result.Result[*Category]

	if err := req.Validate(); err != nil {
		return result.BadRequest[*Category]("invalid category", err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[*Category]("category not found"), nil
		}
		return res, err
	}
	if c.IsDefault() {
		return result.BadRequest[*Category]("the default category cannot be renamed"), nil
	}

	c.Name = req.Name
	if err := repo.Update(ctx, c); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return result.Fail[*Category](http.StatusConflict, "a category with this name already exists"), nil
		}
		return res, err
	}
	return result.Ok(c), nil
}

// Delete soft-deletes a category and relinks its articles to the default
// category inside one transaction. The default category is protected.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any]("category not found"), nil
		}
		return res, err
	}
	if c.IsDefault() {
		return result.BadRequest[any]("the default category cannot be deleted"), nil
	}

	fallback, err := s.findDefault(ctx, uow)
	if err != nil {
		return res, fmt.Errorf("resolve default category: %w", err)
	}

	if err := repo.SoftDelete(ctx, c); err != nil {
		return res, err
	}
	if s.relink != nil {
		if err := s.relink(ctx, uow, c.ID, fallback.ID); err != nil {
			return res, err
		}
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any]("category deleted"), nil
}

func (s *service) EnsureDefault(ctx context.Context) (*Category, error) {
	uow := s.scope()
	defer uow.Discard()

	existing, err := s.findDefault(ctx, uow)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	c := &Category{Name: DefaultName}
	if err := repository.For(uow, s.mapping).Add(ctx, c); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create default category: %w", err)
	}
	return c, nil
}

func (s *service) findDefault(ctx context.Context, uow repository.UnitOfWork) (*Category, error) {
	items, _, err := repository.For(uow, s.mapping).Find(ctx, query.NewListQuery(
		query.ListParams{Page: 1, PageSize: 1},
		query.Filter{Column: "name", Value: DefaultName},
	))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	return items[0], nil
}
