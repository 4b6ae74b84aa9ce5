// Package storage keeps a local SQLite copy of the caller's bookmarks so the
// list command still works when the server is unreachable. The cache is
// replaced wholesale on every successful refresh.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/kyraymege/bookmarkd/internal/client/api"
	"github.com/kyraymege/bookmarkd/internal/client/storage/migrations"
	"github.com/kyraymege/bookmarkd/internal/dbx"
)

type BookmarkCache struct {
	db *sql.DB
}

// Open opens (or creates) the cache database and brings its schema up to
// date.
func Open(ctx context.Context, dsn string) (*BookmarkCache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("cache migration error: %w", err)
	}

	return &BookmarkCache{db: db}, nil
}

func (c *BookmarkCache) Close() error {
	return c.db.Close()
}

// Replace swaps the cached set for the given one atomically.
func (c *BookmarkCache) Replace(ctx context.Context, bookmarks []api.Bookmark) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM bookmarks"); err != nil {
			return err
		}

		for _, b := range bookmarks {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO bookmarks (id, title, link, description) VALUES ($1, $2, $3, $4)",
				b.ID, b.Title, b.Link, b.Description)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// List returns the cached bookmarks ordered by title.
func (c *BookmarkCache) List(ctx context.Context) ([]api.Bookmark, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, title, link, description FROM bookmarks ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []api.Bookmark
	for rows.Next() {
		var b api.Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.Link, &b.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
