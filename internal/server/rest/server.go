// Package rest exposes the user and bookmark services over HTTP. It owns the
// router, the bearer token middleware, and the request and response shapes.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kyraymege/bookmarkd/internal/logging"
	"github.com/kyraymege/bookmarkd/internal/server/bookmarks"
	"github.com/kyraymege/bookmarkd/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type RestServer struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	bookmarks *bookmarks.Service
	jwtSecret []byte
}

func NewRestServer(a string, l logging.Logger, us *users.Service, bs *bookmarks.Service, secretKey string) (*RestServer, error) {
	return &RestServer{
		address:   a,
		logger:    l.With("module", "rest_server"),
		users:     us,
		bookmarks: bs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *RestServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
