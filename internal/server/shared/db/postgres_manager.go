package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kyraymege/bookmarkd/internal/server/migrations"
	"github.com/kyraymege/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/kyraymege/bookmarkd/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	bookmarks bookmarks.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Bookmarks() bookmarks.Repository {
	return m.bookmarks
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresRepositoryManager opens the database, constructs the
// repositories, and brings the schema up to date.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		users:     users.NewPostgresRepository(db),
		bookmarks: bookmarks.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
