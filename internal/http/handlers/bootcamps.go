package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/http/respond"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/service"
)

// BootcampHandler serves /api/v1/bootcamps.
type BootcampHandler struct {
	svc *service.BootcampService
	log *zap.Logger
}

func NewBootcampHandler(svc *service.BootcampService, log *zap.Logger) *BootcampHandler {
	return &BootcampHandler{svc: svc, log: log}
}

// Register attaches bootcamp routes; mutations go through protect.
func (h *BootcampHandler) Register(mux *http.ServeMux, protect Middleware) {
	mux.HandleFunc("GET /api/v1/bootcamps", h.handleList)
	mux.HandleFunc("GET /api/v1/bootcamps/{id}", h.handleGet)
	mux.Handle("POST /api/v1/bootcamps", guard(protect, h.handleCreate))
	mux.Handle("PUT /api/v1/bootcamps/{id}", guard(protect, h.handleUpdate))
	mux.Handle("DELETE /api/v1/bootcamps/{id}", guard(protect, h.handleDelete))
}

func (h *BootcampHandler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.List(w, h.log, out)
}

func (h *BootcampHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, b)
}

func (h *BootcampHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	var req dto.BootcampRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	b, err := h.svc.Create(r.Context(), actor, req)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusCreated, b)
}

func (h *BootcampHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
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
	var req dto.BootcampRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	b, err := h.svc.Update(r.Context(), actor, id, req)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, b)
}

func (h *BootcampHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
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
