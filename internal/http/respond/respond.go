package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/http/requestid"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Empty serializes as {} where a response carries no data.
var Empty = struct{}{}

// JSON writes a successful response carrying data.
func JSON(w http.ResponseWriter, log *zap.Logger, status int, data any) {
	write(w, log, status, Envelope{Success: true, Data: data})
}

// List writes a successful response carrying a collection and its size.
func List[T any](w http.ResponseWriter, log *zap.Logger, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	write(w, log, http.StatusOK, Envelope{Success: true, Count: &n, Data: items})
}

// Token writes the body of a successful register or login.
func Token(w http.ResponseWriter, log *zap.Logger, token string) {
	write(w, log, http.StatusOK, Envelope{Success: true, Token: token})
}

// Error writes a failure envelope with an explicit status.
func Error(w http.ResponseWriter, log *zap.Logger, status int, message string) {
	write(w, log, status, Envelope{Success: false, Error: message})
}

// Err translates err into its status code and a client-safe message. It is the
// single place where failures become responses. Internal errors are logged.
func Err(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("request_id", requestid.From(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	Error(w, log, status, apperr.PublicMessage(err))
}

func write(w http.ResponseWriter, log *zap.Logger, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn("respond: encode payload failed", zap.Error(err))
	}
}
