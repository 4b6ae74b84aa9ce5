package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	HeaderContentType   = "Content-Type"
	ContentTypeJSONUTF8 = "application/json; charset=utf-8"
)

// RespondWithError writes a JSON error body {"error": message} with the
// given status code.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithJSON marshals payload and writes it with the given status code.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
	w.WriteHeader(status)
	_, _ = w.Write(response)
}
