package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogarchive-backend/internal/shared/model"
	"blogarchive-backend/internal/shared/query"
)

// MemoryStore is the swappable in-memory backing used by tests. It honors the
// same contracts as Postgres: soft-delete filtering, uniqueness constraints
// enforced at commit, and all-or-nothing commits.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]map[uuid.UUID]model.Entity
	unique map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]map[uuid.UUID]model.Entity),
		unique: make(map[string][]string),
	}
}

func (s *MemoryStore) registerUnique(table string, columns []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(columns) > 0 {
		s.unique[table] = columns
	}
}

// MemoryScope returns a ScopeFactory producing units of work over one store.
func MemoryScope(store *MemoryStore) ScopeFactory {
	return func() UnitOfWork {
		return NewMemoryUnitOfWork(store)
	}
}

type memTables = map[string]map[uuid.UUID]model.Entity

// MemoryUnitOfWork stages mutations and applies them to a copy of the store's
// tables at commit; the copy replaces the live tables only if every staged
// operation succeeds.
type MemoryUnitOfWork struct {
	store  *MemoryStore
	repos  map[string]any
	staged []func(memTables) error
}

func NewMemoryUnitOfWork(store *MemoryStore) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		store: store,
		repos: make(map[string]any),
	}
}

func (u *MemoryUnitOfWork) stage(fn func(memTables) error) {
	u.staged = append(u.staged, fn)
}

func (u *MemoryUnitOfWork) Commit(_ context.Context) error {
	if len(u.staged) == 0 {
		return nil
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	scratch := make(memTables, len(u.store.tables))
	for table, rows := range u.store.tables {
		clone := make(map[uuid.UUID]model.Entity, len(rows))
		for id, e := range rows {
			clone[id] = e
		}
		scratch[table] = clone
	}

	for _, fn := range u.staged {
		if err := fn(scratch); err != nil {
			return err
		}
	}

	u.store.tables = scratch
	u.staged = nil
	return nil
}

func (u *MemoryUnitOfWork) Discard() {
	u.staged = nil
}

type memoryRepository[T model.Entity] struct {
	m   Mapping[T]
	uow *MemoryUnitOfWork
}

func newMemoryRepository[T model.Entity](m Mapping[T], uow *MemoryUnitOfWork) *memoryRepository[T] {
	return &memoryRepository[T]{m: m, uow: uow}
}

func (r *memoryRepository[T]) Add(_ context.Context, entity T) error {
	entity.Base().EnsureIdentity()

	id := entity.Base().ID
	r.uow.stage(func(tables memTables) error {
		rows := tables[r.m.Table]
		if rows == nil {
			rows = make(map[uuid.UUID]model.Entity)
			tables[r.m.Table] = rows
		}
		if err := r.checkUnique(rows, entity, id); err != nil {
			return err
		}
		rows[id] = entity
		return nil
	})
	return nil
}

func (r *memoryRepository[T]) GetByID(_ context.Context, id uuid.UUID) (T, error) {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	var zero T
	e, ok := r.uow.store.tables[r.m.Table][id]
	if !ok || e.Base().IsDeleted {
		return zero, ErrNotFound
	}
	return e.(T), nil
}

func (r *memoryRepository[T]) Find(_ context.Context, q query.ListQuery) ([]T, int, error) {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	matched := make([]T, 0)
	for _, e := range r.uow.store.tables[r.m.Table] {
		entity := e.(T)
		if entity.Base().IsDeleted || !r.matches(entity, q) {
			continue
		}
		matched = append(matched, entity)
	}

	r.sortEntities(matched, q.Params)
	total := len(matched)

	offset := q.Params.Offset()
	if offset >= total {
		return []T{}, total, nil
	}
	end := offset + q.Params.PageSize
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *memoryRepository[T]) Update(_ context.Context, entity T) error {
	entity.Base().Touch()

	id := entity.Base().ID
	r.uow.stage(func(tables memTables) error {
		rows := tables[r.m.Table]
		if _, ok := rows[id]; !ok {
			return fmt.Errorf("update %s: %w", r.m.Table, ErrNotFound)
		}
		if err := r.checkUnique(rows, entity, id); err != nil {
			return err
		}
		rows[id] = entity
		return nil
	})
	return nil
}

func (r *memoryRepository[T]) SoftDelete(_ context.Context, entity T) error {
	b := entity.Base()
	b.IsDeleted = true
	b.Touch()

	id := b.ID
	r.uow.stage(func(tables memTables) error {
		rows := tables[r.m.Table]
		if _, ok := rows[id]; !ok {
			return fmt.Errorf("soft delete %s: %w", r.m.Table, ErrNotFound)
		}
		rows[id] = entity
		return nil
	})
	return nil
}

func (r *memoryRepository[T]) checkUnique(rows map[uuid.UUID]model.Entity, entity T, selfID uuid.UUID) error {
	for _, column := range r.uow.store.unique[r.m.Table] {
		value, ok := r.m.ColumnValue(entity, column)
		if !ok {
			continue
		}
		for id, other := range rows {
			if id == selfID || other.Base().IsDeleted {
				continue
			}
			existing, _ := r.m.ColumnValue(other.(T), column)
			if fmt.Sprint(existing) == fmt.Sprint(value) {
				return fmt.Errorf("%s (%s): %w", r.m.Table, column, ErrConflict)
			}
		}
	}
	return nil
}

func (r *memoryRepository[T]) matches(entity T, q query.ListQuery) bool {
	for _, f := range q.Filters {
		value, ok := r.m.ColumnValue(entity, f.Column)
		if !ok || fmt.Sprint(value) != fmt.Sprint(f.Value) {
			return false
		}
	}

	term := strings.ToLower(q.Params.SearchTerm)
	if term == "" || len(r.m.SearchColumns) == 0 {
		return true
	}
	for _, column := range r.m.SearchColumns {
		if value, ok := r.m.ColumnValue(entity, column); ok {
			if strings.Contains(strings.ToLower(fmt.Sprint(value)), term) {
				return true
			}
		}
	}
	return false
}

func (r *memoryRepository[T]) sortEntities(entities []T, params query.ListParams) {
	column := query.SortColumn(params.SortBy, r.m.Sortable)
	ascending := query.Ascending(params.SortOrder)

	sort.SliceStable(entities, func(i, j int) bool {
		a, _ := r.m.ColumnValue(entities[i], column)
		b, _ := r.m.ColumnValue(entities[j], column)
		if fmt.Sprint(a) == fmt.Sprint(b) {
			// Tiebreaker mirrors the SQL "id ASC".
			return entities[i].Base().ID.String() < entities[j].Base().ID.String()
		}
		if ascending {
			return lessValue(a, b)
		}
		return lessValue(b, a)
	})
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
