package httpx

import (
	"errors"
	"net/http"

	"github.com/kyraymege/bookmarkd/internal/logging"
)

// AppHandler is a handler function that returns an error instead of writing
// error responses itself.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an AppHandler to http.HandlerFunc. A returned HTTPError
// becomes a JSON error response with its status code; anything else is a 500
// with no internal detail exposed. The underlying cause goes to log, the
// client sees only the public message.
func MakeHandler(log logging.Logger, handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		statusCode := http.StatusInternalServerError
		publicMessage := msgInternalServer

		if errors.As(err, &httpErr) {
			statusCode = httpErr.Code
			publicMessage = httpErr.Message

			args := []any{
				"code", statusCode,
				"msg", publicMessage,
				"cause", errors.Unwrap(httpErr),
				"path", r.URL.Path,
				"method", r.Method,
			}
			if statusCode >= 500 {
				log.Error(r.Context(), "request failed", args...)
			} else {
				log.Warn(r.Context(), "request failed", args...)
			}
		} else {
			log.Error(r.Context(), "unhandled internal error",
				"path", r.URL.Path,
				"method", r.Method,
				"error", err,
			)
		}

		RespondWithError(w, statusCode, publicMessage)
	}
}
