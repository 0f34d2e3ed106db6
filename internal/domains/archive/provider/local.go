package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogarchive-backend/internal/shared/result"
)

// localProvider reads metadata straight from one family's table. Families
// without an image column (quotes) use a constant empty expression instead.
type localProvider struct {
	pool         *pgxpool.Pool
	activityType string
	table        string
	titleColumn  string
	imageExpr    string
}

func NewLocal(pool *pgxpool.Pool, activityType, table, titleColumn, imageExpr string) Provider {
	if imageExpr == "" {
		imageExpr = "''"
	}
	return &localProvider{
		pool:         pool,
		activityType: activityType,
		table:        table,
		titleColumn:  titleColumn,
		imageExpr:    imageExpr,
	}
}

// Locals builds the full set of local providers, one per media family.
func Locals(pool *pgxpool.Pool) []Provider {
	return []Provider{
		NewLocal(pool, ActivityMovie, "movies", "title", "COALESCE(image_url, '')"),
		NewLocal(pool, ActivityBook, "books", "title", "COALESCE(image_url, '')"),
		NewLocal(pool, ActivityGame, "games", "title", "COALESCE(image_url, '')"),
		NewLocal(pool, ActivityAnime, "animes", "title", "COALESCE(image_url, '')"),
		NewLocal(pool, ActivityMusic, "musics", "title", "COALESCE(image_url, '')"),
		NewLocal(pool, ActivityTvSeries, "tv_series", "title", "COALESCE(image_url, '')"),
		NewLocal(pool, ActivityQuote, "quotes", "text", ""),
		NewLocal(pool, ActivityTtrpg, "ttrpgs", "title", "COALESCE(image_url, '')"),
	}
}

func (p *localProvider) ActivityType() string { return p.activityType }
func (p *localProvider) ProviderType() string { return ProviderTypeLocal }

func (p *localProvider) Item(ctx context.Context, id uuid.UUID) (result.Result[Metadata], error) {
	sql := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE id = $1 AND is_deleted = FALSE",
		p.titleColumn, p.imageExpr, p.table,
	)

	var meta Metadata
	err := p.pool.QueryRow(ctx, sql, id).Scan(&meta.Title, &meta.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.NotFound[Metadata](p.activityType + " item not found"), nil
		}
		return result.Result[Metadata]{}, fmt.Errorf("lookup %s item: %w", p.table, err)
	}
	return result.Ok(meta), nil
}

func (p *localProvider) Items(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Metadata, error) {
	found := make(map[uuid.UUID]Metadata, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	sql := fmt.Sprintf(
		"SELECT id, %s, %s FROM %s WHERE id = ANY($1) AND is_deleted = FALSE",
		p.titleColumn, p.imageExpr, p.table,
	)

	rows, err := p.pool.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("batch lookup %s items: %w", p.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var meta Metadata
		if err := rows.Scan(&id, &meta.Title, &meta.ImageURL); err != nil {
			return nil, fmt.Errorf("scan %s item: %w", p.table, err)
		}
		found[id] = meta
	}
	return found, rows.Err()
}
