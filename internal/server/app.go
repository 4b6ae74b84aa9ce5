// Package server initializes and runs the main application server.
// It wires the configuration, storage, domain services, and the HTTP
// endpoint together and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kyraymege/bookmarkd/internal/logging"
	"github.com/kyraymege/bookmarkd/internal/server/bookmarks"
	"github.com/kyraymege/bookmarkd/internal/server/config"
	"github.com/kyraymege/bookmarkd/internal/server/rest"
	"github.com/kyraymege/bookmarkd/internal/server/shared/db"
	"github.com/kyraymege/bookmarkd/internal/server/users"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	manager         db.RepositoryManager
	userService     *users.Service
	bookmarkService *bookmarks.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), c)
	bs := bookmarks.NewService(m.Bookmarks())

	return &App{config: c, logger: logger, manager: m, userService: us, bookmarkService: bs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startRestServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := rest.NewRestServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.bookmarkService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRestServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
