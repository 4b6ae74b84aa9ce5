// Package bookmarks provides the PostgreSQL-backed bookmark store.
package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/dbx"
	"github.com/kyraymege/bookmarkd/internal/server/models"
)

// Postgres error code for values that do not parse as the uuid key column.
const invalidTextRepresentation = "22P02"

// isInvalidID reports whether err is Postgres rejecting a value that does not
// parse as the uuid key column. A syntactically impossible id addresses no
// row, so callers treat it the same as an absent one.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

// PostgresRepository implements bookmark storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a bookmark for its owner.
func (r *PostgresRepository) Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	query :=
		`INSERT INTO bookmarks (id, user_id, title, link, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.ID, bookmark.UserID, bookmark.Title, bookmark.Link, bookmark.Description).
		Scan(&bookmark.CreatedAt, &bookmark.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

// ListByUser returns all bookmarks owned by userID, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, link, description, created_at, updated_at FROM bookmarks
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Bookmark
	for rows.Next() {
		var item models.Bookmark
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Link, &item.Description,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID fetches one bookmark regardless of owner. The ownership check is
// the service's job so that absent and foreign rows are indistinguishable
// to clients.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, link, description, created_at, updated_at FROM bookmarks
		 WHERE id = $1
		 `

	item := &models.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.Title, &item.Link, &item.Description,
		&item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// Update rewrites the mutable fields of a bookmark.
func (r *PostgresRepository) Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	query :=
		`UPDATE bookmarks SET title = $2, link = $3, description = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.ID, bookmark.Title, bookmark.Link, bookmark.Description).Scan(&bookmark.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

// Delete removes a bookmark by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM bookmarks
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isInvalidID(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
