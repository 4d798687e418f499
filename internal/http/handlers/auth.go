package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/http/respond"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/service"
)

// AuthHandler owns the register/login/me/logout endpoints.
type AuthHandler struct {
	svc       *service.AuthService
	cookieTTL time.Duration
	secure    bool
	log       *zap.Logger
	now       func() time.Time
}

// NewAuthHandler constructs the handler. secure marks the token cookie Secure.
func NewAuthHandler(svc *service.AuthService, cookieTTL time.Duration, secure bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookieTTL: cookieTTL, secure: secure, log: log, now: time.Now}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux, protect Middleware) {
	mux.HandleFunc("POST /api/v1/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
	mux.Handle("GET /api/v1/auth/me", guard(protect, h.handleMe))
	mux.HandleFunc("GET /api/v1/auth/logout", h.handleLogout)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	_, token, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	h.sendToken(w, token)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	_, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	h.sendToken(w, token)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	user, err := h.svc.Me(r.Context(), actor.ID)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, user)
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedCookie(h.now(), h.secure))
	respond.JSON(w, h.log, http.StatusOK, respond.Empty)
}

// sendToken returns the token in the body and as an HttpOnly cookie.
func (h *AuthHandler) sendToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, auth.TokenCookie(token, h.now().Add(h.cookieTTL), h.secure))
	respond.Token(w, h.log, token)
}
