package repository

import "blogarchive-backend/internal/shared/model"

// baseColumns are persisted for every entity, in this order, ahead of the
// entity-specific columns.
var baseColumns = []string{"id", "created_at", "updated_at", "is_deleted"}

// Mapping describes how one entity family maps onto its table. It is the only
// per-entity code the generic repository needs: table name, entity-specific
// columns, the search and sort surface, and value accessors.
type Mapping[T model.Entity] struct {
	// Table is the table name.
	Table string

	// Columns are the entity-specific column names, excluding the base
	// columns. Args and Fields follow this order.
	Columns []string

	// SearchColumns are the text columns matched by free-text search.
	SearchColumns []string

	// Sortable allow-lists client sort fields: api field name -> column.
	Sortable map[string]string

	// Unique lists columns carrying a uniqueness constraint. Postgres
	// enforces these through the schema; the in-memory store enforces them
	// at commit.
	Unique []string

	// New returns a zero entity for scanning.
	New func() T

	// Args returns the entity's values in Columns order.
	Args func(T) []any

	// Fields returns scan destinations in Columns order.
	Fields func(T) []any
}

func (m Mapping[T]) allColumns() []string {
	cols := make([]string, 0, len(baseColumns)+len(m.Columns))
	cols = append(cols, baseColumns...)
	return append(cols, m.Columns...)
}

func (m Mapping[T]) writeArgs(e T) []any {
	b := e.Base()
	args := make([]any, 0, 4+len(m.Columns))
	args = append(args, b.ID, b.CreatedAt, b.UpdatedAt, b.IsDeleted)
	return append(args, m.Args(e)...)
}

func (m Mapping[T]) scanDest(e T) []any {
	b := e.Base()
	dest := make([]any, 0, 4+len(m.Columns))
	dest = append(dest, &b.ID, &b.CreatedAt, &b.UpdatedAt, &b.IsDeleted)
	return append(dest, m.Fields(e)...)
}

// ColumnValue returns the entity's current value for a column, base columns
// included. Used by the in-memory store for filtering, sorting and
// uniqueness checks.
func (m Mapping[T]) ColumnValue(e T, column string) (any, bool) {
	b := e.Base()
	switch column {
	case "id":
		return b.ID, true
	case "created_at":
		return b.CreatedAt, true
	case "updated_at":
		return b.UpdatedAt, true
	case "is_deleted":
		return b.IsDeleted, true
	}
	for i, c := range m.Columns {
		if c == column {
			return m.Args(e)[i], true
		}
	}
	return nil, false
}
