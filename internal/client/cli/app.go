// Package cli implements the interactive terminal client. It drives the
// HTTP API for account and bookmark operations and keeps a local SQLite
// cache so listing still works when the server is unreachable.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/kyraymege/bookmarkd/internal/client/api"
	"github.com/kyraymege/bookmarkd/internal/client/config"
	"github.com/kyraymege/bookmarkd/internal/client/storage"

	_ "modernc.org/sqlite"
)

// apiClient is the server surface the CLI needs; *api.Client satisfies it
// and tests can provide a stub.
type apiClient interface {
	IsAuthenticated() bool
	Logout()
	Signup(ctx context.Context, email string, password []byte) error
	Signin(ctx context.Context, email string, password []byte) error
	Me(ctx context.Context) (*api.User, error)
	ListBookmarks(ctx context.Context) ([]api.Bookmark, error)
	CreateBookmark(ctx context.Context, title, link, description string) (*api.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error
}

type App struct {
	config   *config.Config
	api      apiClient
	cache    *storage.BookmarkCache
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	cache, err := storage.Open(ctx, c.CacheFile)
	if err != nil {
		log.Printf("error initializing cache: %s", err.Error())
		return nil, err
	}

	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		cache:  cache,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.cache.Close(); err != nil {
			log.Printf("error closing cache: %s", err.Error())
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}
