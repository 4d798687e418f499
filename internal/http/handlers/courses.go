package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/http/respond"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/service"
)

// CourseHandler serves /api/v1/courses and the nested bootcamp course routes.
type CourseHandler struct {
	svc *service.CourseService
	log *zap.Logger
}

func NewCourseHandler(svc *service.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: log}
}

// Register attaches course routes; mutations go through protect.
func (h *CourseHandler) Register(mux *http.ServeMux, protect Middleware) {
	mux.HandleFunc("GET /api/v1/courses", h.handleList)
	mux.HandleFunc("GET /api/v1/courses/{id}", h.handleGet)
	mux.HandleFunc("GET /api/v1/bootcamps/{bootcampId}/courses", h.handleListByBootcamp)
	mux.Handle("POST /api/v1/bootcamps/{bootcampId}/courses", guard(protect, h.handleAdd))
	mux.Handle("PUT /api/v1/courses/{id}", guard(protect, h.handleUpdate))
	mux.Handle("DELETE /api/v1/courses/{id}", guard(protect, h.handleDelete))
}

func (h *CourseHandler) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.List(w, h.log, out)
}

func (h *CourseHandler) handleListByBootcamp(w http.ResponseWriter, r *http.Request) {
	bootcampID, err := pathID(r, "bootcampId")
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	out, err := h.svc.ListByBootcamp(r.Context(), bootcampID)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.List(w, h.log, out)
}

func (h *CourseHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, c)
}

func (h *CourseHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	bootcampID, err := pathID(r, "bootcampId")
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	var req dto.CourseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	c, err := h.svc.Add(r.Context(), actor, bootcampID, req)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusCreated, c)
}

func (h *CourseHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
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
	var req dto.CourseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	c, err := h.svc.Update(r.Context(), actor, id, req)
	if err != nil {
		respond.Err(w, r, h.log, err)
		return
	}
	respond.JSON(w, h.log, http.StatusOK, c)
}

func (h *CourseHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
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
