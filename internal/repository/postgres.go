package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blogarchive-backend/internal/shared/model"
	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/pkg/logger"
)

// pgRepository is the generic Postgres implementation backed by raw SQL over
// pgx. SQL for the fixed operations is built once from the mapping.
type pgRepository[T model.Entity] struct {
	m   Mapping[T]
	uow *PgUnitOfWork

	insertSQL     string
	updateSQL     string
	softDeleteSQL string
	getByIDSQL    string
}

func newPgRepository[T model.Entity](m Mapping[T], uow *PgUnitOfWork) *pgRepository[T] {
	all := m.allColumns()

	placeholders := make([]string, len(all))
	for i := range all {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// UPDATE binds id first, then the remaining write args in order.
	sets := make([]string, 0, len(all)-1)
	for i, col := range all[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}

	return &pgRepository[T]{
		m:   m,
		uow: uow,
		insertSQL: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			m.Table, strings.Join(all, ", "), strings.Join(placeholders, ", "),
		),
		updateSQL: fmt.Sprintf(
			"UPDATE %s SET %s WHERE id = $1",
			m.Table, strings.Join(sets, ", "),
		),
		softDeleteSQL: fmt.Sprintf(
			"UPDATE %s SET is_deleted = TRUE, updated_at = $2 WHERE id = $1",
			m.Table,
		),
		getByIDSQL: fmt.Sprintf(
			"SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE",
			strings.Join(all, ", "), m.Table,
		),
	}
}

func (r *pgRepository[T]) Add(_ context.Context, entity T) error {
	entity.Base().EnsureIdentity()

	// Snapshot the write args now: staging captures intent, later mutation
	// of the entity does not change what commit persists.
	args := r.m.writeArgs(entity)
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, r.insertSQL, args...); err != nil {
			return mapPgError(r.m.Table, err)
		}
		return nil
	})
	return nil
}

func (r *pgRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	entity := r.m.New()
	row := r.uow.pool.QueryRow(ctx, r.getByIDSQL, id)
	if err := row.Scan(r.m.scanDest(entity)...); err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("get %s by id: %w", r.m.Table, err)
	}
	return entity, nil
}

func (r *pgRepository[T]) Find(ctx context.Context, q query.ListQuery) ([]T, int, error) {
	where, args := r.buildWhere(q)

	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.m.Table, where)
	if err := r.uow.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", r.m.Table, err)
	}

	params := q.Params
	listSQL := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		strings.Join(r.m.allColumns(), ", "), r.m.Table, where,
		query.OrderClause(params.SortBy, params.SortOrder, r.m.Sortable),
		len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, params.Offset())

	rows, err := r.uow.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.m.Table, err)
	}
	defer rows.Close()

	entities := make([]T, 0, params.PageSize)
	for rows.Next() {
		entity := r.m.New()
		if err := rows.Scan(r.m.scanDest(entity)...); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", r.m.Table, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.m.Table, err)
	}
	return entities, total, nil
}

func (r *pgRepository[T]) buildWhere(q query.ListQuery) (string, []any) {
	conditions := []string{"is_deleted = FALSE"}
	args := make([]any, 0, len(q.Filters)+1)

	for _, f := range q.Filters {
		args = append(args, f.Value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}

	if term := q.Params.SearchTerm; term != "" && len(r.m.SearchColumns) > 0 {
		args = append(args, "%"+term+"%")
		parts := make([]string, len(r.m.SearchColumns))
		for i, col := range r.m.SearchColumns {
			parts[i] = fmt.Sprintf("%s ILIKE $%d", col, len(args))
		}
		conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
	}

	return strings.Join(conditions, " AND "), args
}

func (r *pgRepository[T]) Update(_ context.Context, entity T) error {
	entity.Base().Touch()

	args := r.m.writeArgs(entity)
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, r.updateSQL, args...)
		if err != nil {
			return mapPgError(r.m.Table, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update %s: %w", r.m.Table, ErrNotFound)
		}
		return nil
	})
	return nil
}

func (r *pgRepository[T]) SoftDelete(_ context.Context, entity T) error {
	b := entity.Base()
	b.IsDeleted = true
	b.Touch()

	id, updatedAt := b.ID, b.UpdatedAt
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, r.softDeleteSQL, id, updatedAt)
		if err != nil {
			return mapPgError(r.m.Table, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("soft delete %s: %w", r.m.Table, ErrNotFound)
		}
		return nil
	})
	return nil
}

// mapPgError translates unique violations into ErrConflict so services can
// treat them as expected domain outcomes.
func mapPgError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		logger.Error("unique constraint violated", err)
		return fmt.Errorf("%s (%s): %w", table, pgErr.ConstraintName, ErrConflict)
	}
	return fmt.Errorf("write %s: %w", table, err)
}
