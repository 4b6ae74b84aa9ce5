// Package db wires the PostgreSQL connection, the repositories, and the
// embedded schema migrations together behind a single manager.
package db

import (
	"github.com/kyraymege/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/kyraymege/bookmarkd/internal/server/repositories/users"
)

// RepositoryManager vends the persistence collaborators of the server.
type RepositoryManager interface {
	Users() users.Repository
	Bookmarks() bookmarks.Repository
	Close() error
}
