package article

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"blogarchive-backend/internal/repository"
	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/result"
	"blogarchive-backend/internal/shared/utils"
)

type Service interface {
	List(ctx context.Context, req ListArticlesRequest) (result.Result[query.Page[*Article]], error)
	GetByID(ctx context.Context, id uuid.UUID) (result.Result[*Article], error)
	GetBySlug(ctx context.Context, slug string) (result.Result[*Article], error)
	Create(ctx context.Context, req CreateArticleRequest) (result.Result[*Article], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateArticleRequest) (result.Result[*Article], error)
	Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error)
	IncrementViews(ctx context.Context, id uuid.UUID) (result.Result[any], error)

	// RelinkCategory satisfies category.ArticleRelinker: staged on the
	// caller's unit of work, committed with it.
	RelinkCategory(ctx context.Context, uow repository.UnitOfWork, from, to uuid.UUID) error
}

type service struct {
	scope   repository.ScopeFactory
	mapping repository.Mapping[*Article]
}

func NewService(scope repository.ScopeFactory) Service {
	return &service{scope: scope, mapping: Mapping()}
}

func (s *service) List(ctx context.Context, req ListArticlesRequest) (result.Result[query.Page[*Article]], error) {
	var res result.Result[query.Page[*Article]]

	uow := s.scope()
	defer uow.Discard()

	var filters []query.Filter
	if req.CategoryID != nil {
		filters = append(filters, query.Filter{Column: "category_id", Value: *req.CategoryID})
	}
	if lang := strings.TrimSpace(req.Language); lang != "" {
		filters = append(filters, query.Filter{Column: "language", Value: lang})
	}

	q := query.NewListQuery(req.ListParams, filters...)
	items, total, err := repository.For(uow, s.mapping).Find(ctx, q)
	if err != nil {
		return res, fmt.Errorf("list articles: %w", err)
	}

	return result.Ok(query.Page[*Article]{
		Items:    items,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PageSize,
	}), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (result.Result[*Article], error) {
	uow := s.scope()
	defer uow.Discard()

	a, err := repository.For(uow, s.mapping).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[*Article]("article not found"), nil
		}
		return result.Result[*Article]{}, err
	}
	return result.Ok(a), nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (result.Result[*Article], error) {
	var res result.Result[*Article]

	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return result.NotFound[*Article]("article not found"), nil
	}

	uow := s.scope()
	defer uow.Discard()

	items, _, err := repository.For(uow, s.mapping).Find(ctx, query.NewListQuery(
		query.ListParams{Page: 1, PageSize: 1},
		query.Filter{Column: "slug", Value: slug},
	))
	if err != nil {
		return res, fmt.Errorf("get article by slug: %w", err)
	}
	if len(items) == 0 {
		return result.NotFound[*Article]("article not found"), nil
	}
	return result.Ok(items[0]), nil
}

func (s *service) Create(ctx context.Context, req CreateArticleRequest) (result.Result[*Article], error) {
	var res result.Result[*Article]

	if err := req.Validate(); err != nil {
		return result.BadRequest[*Article]("invalid article", err.Error()), nil
	}

	slug := utils.GenerateSlug(req.Title)
	if slug == "" {
		return result.BadRequest[*Article]("title does not produce a usable slug"), nil
	}

	uow := s.scope()
	defer uow.Discard()

	a := &Article{
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		Slug:       slug,
		CategoryID: req.CategoryID,
		Language:   strings.TrimSpace(req.Language),
		ImageID:    req.ImageID,
	}
	if err := repository.For(uow, s.mapping).Add(ctx, a); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return result.Fail[*Article](http.StatusConflict, "an article with this slug already exists"), nil
		}
		return res, err
	}
	return result.Created(a), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateArticleRequest) (result.Result[*Article], error) {
	var res result.Result[*Article]

	if err := req.Validate(); err != nil {
		return result.BadRequest[*Article]("invalid article", err.Error()), nil
	}

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[*Article]("article not found"), nil
		}
		return res, err
	}

	title := strings.TrimSpace(req.Title)
	if title != a.Title {
		slug := utils.GenerateSlug(title)
		if slug == "" {
			return result.BadRequest[*Article]("title does not produce a usable slug"), nil
		}
		a.Slug = slug
	}
	a.Title = title
	a.Content = req.Content
	a.CategoryID = req.CategoryID
	a.Language = strings.TrimSpace(req.Language)
	a.ImageID = req.ImageID

	if err := repo.Update(ctx, a); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return result.Fail[*Article](http.StatusConflict, "an article with this slug already exists"), nil
		}
		return res, err
	}
	return result.Ok(a), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any]("article not found"), nil
		}
		return res, err
	}

	if err := repo.SoftDelete(ctx, a); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any]("article deleted"), nil
}

func (s *service) IncrementViews(ctx context.Context, id uuid.UUID) (result.Result[any], error) {
	var res result.Result[any]

	uow := s.scope()
	defer uow.Discard()

	repo := repository.For(uow, s.mapping)
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return result.NotFound[any]("article not found"), nil
		}
		return res, err
	}

	a.ViewCount++
	if err := repo.Update(ctx, a); err != nil {
		return res, err
	}
	if err := uow.Commit(ctx); err != nil {
		return res, err
	}
	return result.OkMessage[any]("view recorded"), nil
}

func (s *service) RelinkCategory(ctx context.Context, uow repository.UnitOfWork, from, to uuid.UUID) error {
	repo := repository.For(uow, s.mapping)

	// One page is enough in practice; loop in case a category holds more.
	for page := 1; ; page++ {
		items, total, err := repo.Find(ctx, query.NewListQuery(
			query.ListParams{Page: page, PageSize: query.MaxPageSize},
			query.Filter{Column: "category_id", Value: from},
		))
		if err != nil {
			return fmt.Errorf("relink articles: %w", err)
		}
		for _, a := range items {
			target := to
			a.CategoryID = &target
			if err := repo.Update(ctx, a); err != nil {
				return err
			}
		}
		if page*query.MaxPageSize >= total || len(items) == 0 {
			return nil
		}
	}
}
