package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/models"
)

type fakeAuthenticator struct {
	users map[string]models.User
	seen  []string
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (models.User, error) {
	f.seen = append(f.seen, token)
	u, ok := f.users[token]
	if !ok {
		return models.User{}, apperr.ErrUnauthorized
	}
	return u, nil
}

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFrom(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", u.Email)
		w.WriteHeader(http.StatusOK)
	})
}

func TestProtect(t *testing.T) {
	authn := &fakeAuthenticator{users: map[string]models.User{
		"good": {ID: 1, Email: "ann@x.com", Role: models.RoleUser},
	}}
	h := Protect(authn, zap.NewNop())(echoUser(t))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer good") }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"}) }, http.StatusOK},
		{"cleared cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "none"}) }, http.StatusUnauthorized},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }, http.StatusUnauthorized},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer forged") }, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "ann@x.com", rec.Header().Get("X-User"))
			} else {
				assert.JSONEq(t, `{"success":false,"error":"Not authorized to access this route"}`, rec.Body.String())
			}
		})
	}
}

func TestProtect_HeaderWinsOverCookie(t *testing.T) {
	authn := &fakeAuthenticator{users: map[string]models.User{"header": {ID: 1, Email: "h@x.com"}}}
	h := Protect(authn, zap.NewNop())(echoUser(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "cookie"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"header"}, authn.seen)
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := RequireRole(zap.NewNop(), models.RoleAdmin)(ok)

	run := func(ctx context.Context) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, run(context.Background()).Code)

	rec := run(auth.WithUser(context.Background(), models.User{ID: 1, Role: models.RoleUser}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "User role user is not authorized")

	assert.Equal(t, http.StatusNoContent, run(auth.WithUser(context.Background(), models.User{ID: 2, Role: models.RoleAdmin})).Code)
}
