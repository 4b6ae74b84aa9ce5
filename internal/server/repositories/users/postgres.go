// Package users provides the PostgreSQL-backed identity store.
package users

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

// Postgres error codes: unique constraint violation and invalid text
// representation (a path string that does not parse as the uuid column).
const (
	uniqueViolationCode       = "23505"
	invalidTextRepresentation = "22P02"
)

// PostgresRepository implements identity storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new identity. The unique index on email is the only
// serialization point: a concurrent duplicate signup surfaces here as
// common.ErrorAlreadyExists, never as a silent overwrite.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName).
		Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByEmail finds an identity by its unique email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, first_name, last_name, created_at, updated_at FROM users
		 WHERE email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID finds an identity by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, first_name, last_name, created_at, updated_at FROM users
		 WHERE id = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Update rewrites the mutable profile fields of an identity. An email change
// races against the same unique index as Create.
func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users SET email = $2, first_name = $3, last_name = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName).Scan(&user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// isInvalidID reports whether err is Postgres rejecting a value that does not
// parse as the uuid key column. A syntactically impossible id addresses no
// row, so callers treat it the same as an absent one.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}
