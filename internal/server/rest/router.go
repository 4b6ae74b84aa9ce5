package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kyraymege/bookmarkd/internal/httpx"
)

const paramID = "id"

func (s *RestServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", handleHealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handle(s.handleSignup))
		r.Post("/signin", s.handle(s.handleSignin))
	})

	// Everything below requires a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(s.authorize)

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", s.handle(s.handleGetMe))
			r.Patch("/", s.handle(s.handleUpdateUser))
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", s.handle(s.handleListBookmarks))
			r.Post("/", s.handle(s.handleCreateBookmark))
			r.Route("/{"+paramID+"}", func(r chi.Router) {
				r.Get("/", s.handle(s.handleGetBookmark))
				r.Patch("/", s.handle(s.handleUpdateBookmark))
				r.Delete("/", s.handle(s.handleDeleteBookmark))
			})
		})
	})

	return r
}

// handle binds an error-returning handler to the server's logger.
func (s *RestServer) handle(h httpx.AppHandler) http.HandlerFunc {
	return httpx.MakeHandler(s.logger, h)
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(httpx.HeaderContentType, "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
