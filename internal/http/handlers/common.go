package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/models"
)

// Middleware wraps a handler, e.g. with the access guard.
type Middleware func(http.Handler) http.Handler

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid JSON payload")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Resource not found with id of %s", raw)
	}
	return id, nil
}

func actorFrom(r *http.Request) (models.User, error) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		return models.User{}, apperr.ErrUnauthorized
	}
	return user, nil
}

func guard(protect Middleware, h http.HandlerFunc) http.Handler {
	return protect(h)
}
