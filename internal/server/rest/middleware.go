package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/httpx"
	"github.com/kyraymege/bookmarkd/internal/server/auth"
)

// logRequests emits one structured line per request with the final status.
func (s *RestServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// authorize verifies the bearer token and attaches the resulting principal
// to the request context. A missing, malformed, expired, or otherwise
// invalid token is always the same 401; the reason is logged, never
// returned.
func (s *RestServer) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerSchemePrefix) {
			s.rejectUnauthorized(w, r, "missing or non-bearer authorization header")
			return
		}

		token := strings.TrimPrefix(header, common.BearerSchemePrefix)

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.rejectUnauthorized(w, r, err.Error())
			return
		}

		principal := auth.Principal{UserID: claims.Subject, Email: claims.Email}
		next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), principal)))
	})
}

func (s *RestServer) rejectUnauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	s.logger.Warn(r.Context(), "rejected bearer token",
		"reason", reason,
		"path", r.URL.Path,
		"method", r.Method,
	)
	httpx.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
}
