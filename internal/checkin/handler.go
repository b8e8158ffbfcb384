package checkin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/gym-management/internal/transport"
)

type ServiceAPI interface {
	CheckIn(dto CreateCheckInDTO) (*CheckIn, error)
	GetCheckIn(id int64) (*CheckIn, error)
	ListCheckIns(userID *int64) ([]*CheckIn, error)
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

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var dto CreateCheckInDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid check-in payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CheckIn(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid check-in id")
		return
	}

	c, err := h.Service.GetCheckIn(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if raw := r.URL.Query().Get("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.WriteError(w, http.StatusBadRequest, "invalid userId filter")
			return
		}
		userID = &parsed
	}

	checkIns, err := h.Service.ListCheckIns(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, checkIns)
}
