package class

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/gym-management/internal/transport"
)

type ServiceAPI interface {
	CreateClass(dto CreateClassDTO) (*Class, error)
	GetClass(id int64) (*Class, error)
	ListClasses(trainerID *int64) ([]*Class, error)
	UpdateClass(id int64, dto UpdateClassDTO) (*Class, error)
	DeleteClass(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     service,
	}
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var dto CreateClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid class payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CreateClass(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetClass(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	c, err := h.Service.GetClass(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) ListClasses(w http.ResponseWriter, r *http.Request) {
	var trainerID *int64
	if raw := r.URL.Query().Get("trainerId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.WriteError(w, http.StatusBadRequest, "invalid trainerId filter")
			return
		}
		trainerID = &parsed
	}

	classes, err := h.Service.ListClasses(trainerID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, classes)
}

func (h *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	var dto UpdateClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid class update payload", "error", err, "class_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.UpdateClass(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	if err := h.Service.DeleteClass(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "class deleted"})
}
