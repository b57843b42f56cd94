package http

import (
	"encoding/json"
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
)

// envelope is the uniform response body. The domain code doubles as the
// transport status code.
type envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, code int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(envelope{Code: code, Msg: msg, Data: data}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func ok(w http.ResponseWriter, msg string, data any) {
	respond(w, domain.CodeOK, msg, data)
}

func fail(w http.ResponseWriter, err error) {
	code := domain.CodeOf(err)
	msg := err.Error()
	if code == domain.CodeInternal {
		logger.Error("internal error", "error", err)
		msg = "Internal server error"
	}
	respond(w, code, msg, nil)
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Invalid("Invalid request body")
	}
	return nil
}
