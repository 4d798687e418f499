package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/http/respond"
	"github.com/hongminglow/devcamper-be/internal/service"
)

// UserHandler serves the admin-only /api/v1/users routes.
type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Register attaches user routes. adminOnly must include authentication.
func (h *UserHandler) Register(mux *http.ServeMux, adminOnly Middleware) {
	mux.Handle("GET /api/v1/users", guard(adminOnly, h.handleList))
	mux.Handle("GET /api/v1/users/{id}", guard(adminOnly, h.handleGet))
	mux.Handle("DELETE /api/v1/users/{id}", guard(adminOnly, h.handleDelete))
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.List(w, h.log, out)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, u)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, respond.Empty)
}
