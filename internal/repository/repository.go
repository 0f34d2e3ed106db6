package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blogarchive-backend/internal/shared/model"
	"blogarchive-backend/internal/shared/query"
)

var (
	// ErrNotFound signals an absent or soft-deleted entity.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict wraps uniqueness violations surfaced at commit time.
	ErrConflict = errors.New("constraint violation")
)

// Repository is the uniform CRUD and query surface over a single entity type.
// One generic implementation serves every entity family through its Mapping.
// Writes only stage intent on the owning unit of work; nothing is persisted
// until the unit of work commits.
type Repository[T model.Entity] interface {
	// Add assigns identity and creation timestamp if unset and stages an
	// insert of the entity's current state.
	Add(ctx context.Context, entity T) error

	// GetByID returns the entity if present and not soft-deleted, else
	// ErrNotFound. A soft-deleted row is never returned.
	GetByID(ctx context.Context, id uuid.UUID) (T, error)

	// Find executes a composed list query restricted to non-deleted rows and
	// returns the page of entities plus the total filtered count.
	Find(ctx context.Context, q query.ListQuery) ([]T, int, error)

	// Update stamps UpdatedAt and stages the modified entity.
	Update(ctx context.Context, entity T) error

	// SoftDelete sets IsDeleted, stamps UpdatedAt and stages the change.
	SoftDelete(ctx context.Context, entity T) error
}

// UnitOfWork is the transactional boundary aggregating staged writes across
// repositories. One instance per request; never shared between requests.
type UnitOfWork interface {
	// Commit persists all staged changes atomically. On failure nothing is
	// persisted and the staged changes remain for inspection or Discard.
	Commit(ctx context.Context) error

	// Discard drops all staged changes without persisting them.
	Discard()
}

// For returns the repository for an entity type within a unit of work,
// creating it on first use. Exactly one instance exists per type per
// unit-of-work lifetime.
func For[T model.Entity](uow UnitOfWork, m Mapping[T]) Repository[T] {
	switch u := uow.(type) {
	case *PgUnitOfWork:
		if r, ok := u.repos[m.Table]; ok {
			return r.(Repository[T])
		}
		r := newPgRepository(m, u)
		u.repos[m.Table] = r
		return r
	case *MemoryUnitOfWork:
		if r, ok := u.repos[m.Table]; ok {
			return r.(Repository[T])
		}
		u.store.registerUnique(m.Table, m.Unique)
		r := newMemoryRepository(m, u)
		u.repos[m.Table] = r
		return r
	default:
		panic("repository: unknown unit of work implementation")
	}
}

// ScopeFactory creates a fresh unit of work for one request's execution.
type ScopeFactory func() UnitOfWork
