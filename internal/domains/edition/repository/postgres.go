package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unignoramus11/lumen/internal/domains/edition"
	"github.com/unignoramus11/lumen/pkg/cache"
	"github.com/unignoramus11/lumen/pkg/logger"
)

const (
	editionCacheTTL  = 15 * time.Minute
	calendarCacheTTL = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the edition store backed by Postgres with a
// redis read-through cache. The cache is best effort: any cache failure is
// logged and the query falls through to the database.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) edition.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func editionCacheKey(date string) string {
	return "edition:" + date
}

func calendarCacheKey(year, month int) string {
	return fmt.Sprintf("calendar:%04d-%02d", year, month)
}

const editionColumns = `
	date, headline, photo_image, photo_label,
	poem, joke, activity, cat_fact, dog_fact, trivia_fact, comic,
	created_at, updated_at`

func scanEdition(row pgx.Row) (*edition.Edition, error) {
	e := &edition.Edition{}
	err := row.Scan(
		&e.Date,
		&e.Headline,
		&e.Photo.ImageBytes,
		&e.Photo.Label,
		&e.Content.Poem,
		&e.Content.Joke,
		&e.Content.Activity,
		&e.Content.CatFact,
		&e.Content.DogFact,
		&e.Content.TriviaFact,
		&e.Content.Comic,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan edition: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) FindByDate(ctx context.Context, date string) (*edition.Edition, error) {
	if r.cache != nil {
		cached := &edition.Edition{}
		found, err := r.cache.Get(ctx, editionCacheKey(date), cached)
		if err != nil {
			logger.Warn("edition cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	query := `SELECT` + editionColumns + ` FROM editions WHERE date = $1`
	e, err := scanEdition(r.pool.QueryRow(ctx, query, date))
	if err != nil || e == nil {
		return e, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, editionCacheKey(date), e, editionCacheTTL); err != nil {
			logger.Warn("edition cache write failed", err)
		}
	}
	return e, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, e *edition.Edition) (bool, error) {
	// ON CONFLICT on the date primary key is the concurrency guard: two
	// racing publishes for the same day collapse into insert-then-update.
	const query = `
		INSERT INTO editions (` + editionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (date) DO UPDATE SET
			headline    = EXCLUDED.headline,
			photo_image = EXCLUDED.photo_image,
			photo_label = EXCLUDED.photo_label,
			poem        = EXCLUDED.poem,
			joke        = EXCLUDED.joke,
			activity    = EXCLUDED.activity,
			cat_fact    = EXCLUDED.cat_fact,
			dog_fact    = EXCLUDED.dog_fact,
			trivia_fact = EXCLUDED.trivia_fact,
			comic       = EXCLUDED.comic,
			updated_at  = EXCLUDED.updated_at
		RETURNING (created_at = updated_at) AS inserted`

	now := time.Now()
	e.UpdatedAt = now
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}

	var created bool
	err := r.pool.QueryRow(ctx, query,
		e.Date,
		e.Headline,
		e.Photo.ImageBytes,
		e.Photo.Label,
		e.Content.Poem,
		e.Content.Joke,
		e.Content.Activity,
		e.Content.CatFact,
		e.Content.DogFact,
		e.Content.TriviaFact,
		e.Content.Comic,
		e.CreatedAt,
		e.UpdatedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert edition %s: %w", e.Date, err)
	}

	r.invalidate(ctx, e.Date)
	return created, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, date string) {
	if r.cache == nil {
		return
	}
	keys := []string{editionCacheKey(date)}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		keys = append(keys, calendarCacheKey(t.Year(), int(t.Month())))
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("edition cache invalidation failed", err)
	}
}

func (r *postgresRepository) FindLatestBefore(ctx context.Context, date string) (*edition.Edition, error) {
	query := `SELECT` + editionColumns + ` FROM editions WHERE date < $1 ORDER BY date DESC LIMIT 1`
	return scanEdition(r.pool.QueryRow(ctx, query, date))
}

func (r *postgresRepository) FindRange(ctx context.Context, year, month int) (map[string]edition.RangeEntry, error) {
	if r.cache != nil {
		cached := map[string]edition.RangeEntry{}
		found, err := r.cache.Get(ctx, calendarCacheKey(year, month), &cached)
		if err != nil {
			logger.Warn("calendar cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := first.Format("2006-01-02")
	to := first.AddDate(0, 1, 0).Format("2006-01-02")

	const query = `
		SELECT date, headline, photo_label
		FROM editions
		WHERE date >= $1 AND date < $2
		ORDER BY date`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query editions %04d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	entries := map[string]edition.RangeEntry{}
	for rows.Next() {
		var date string
		var entry edition.RangeEntry
		if err := rows.Scan(&date, &entry.Headline, &entry.Label); err != nil {
			return nil, fmt.Errorf("scan calendar row: %w", err)
		}
		entries[date] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar rows: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, calendarCacheKey(year, month), entries, calendarCacheTTL); err != nil {
			logger.Warn("calendar cache write failed", err)
		}
	}
	return entries, nil
}
