package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/http/respond"
	"github.com/hongminglow/devcamper-be/internal/models"
)

// Authenticator resolves a raw token to the user it identifies.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// Protect rejects requests without a valid token and attaches the resolved
// user to the request context. The token is read from the Authorization
// bearer header first, then from the token cookie.
func Protect(authn Authenticator, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFrom(r)
			if token == "" {
				respond.Err(w, r, log, apperr.ErrUnauthorized)
				return
			}
			user, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				respond.Err(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// RequireRole rejects authenticated users whose role is not listed. It must
// run after Protect; without an identity it answers 401.
func RequireRole(log *zap.Logger, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFrom(r.Context())
			if !ok {
				respond.Err(w, r, log, apperr.ErrUnauthorized)
				return
			}
			if !auth.HasRole(user, roles...) {
				respond.Err(w, r, log, apperr.Forbidden("User role %s is not authorized to access this route", user.Role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenFrom(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != auth.ClearedCookieValue {
		return cookie.Value
	}
	return ""
}
