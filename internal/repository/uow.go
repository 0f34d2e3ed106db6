package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogarchive-backend/pkg/database"
)

// PgUnitOfWork aggregates staged writes from its repositories and commits
// them in a single database transaction. Reads bypass staging and go straight
// to the pool, so uncommitted writes stay invisible.
type PgUnitOfWork struct {
	pool   *pgxpool.Pool
	repos  map[string]any
	staged []func(context.Context, pgx.Tx) error
}

func NewPgUnitOfWork(pool *pgxpool.Pool) *PgUnitOfWork {
	return &PgUnitOfWork{
		pool:  pool,
		repos: make(map[string]any),
	}
}

func (u *PgUnitOfWork) stage(fn func(context.Context, pgx.Tx) error) {
	u.staged = append(u.staged, fn)
}

// Commit replays all staged statements inside one transaction. On any failure
// the transaction rolls back and no partial state is persisted; the staged
// changes are cleared only after a successful commit.
func (u *PgUnitOfWork) Commit(ctx context.Context) error {
	if len(u.staged) == 0 {
		return nil
	}

	err := database.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		for _, fn := range u.staged {
			if err := fn(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.staged = nil
	return nil
}

// Discard drops all staged changes.
func (u *PgUnitOfWork) Discard() {
	u.staged = nil
}

// PgScope returns a ScopeFactory producing request-scoped units of work over
// the shared pool.
func PgScope(pool *pgxpool.Pool) ScopeFactory {
	return func() UnitOfWork {
		return NewPgUnitOfWork(pool)
	}
}
