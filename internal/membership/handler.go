package membership

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/gym-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Subscribe(dto SubscribeDTO) (*UserMembership, error)
	ChangePlanOrDates(id int64, dto UpdateUserMembershipDTO) (*UserMembership, error)
	Deactivate(id int64) (*UserMembership, error)
	GetUserMembership(id int64) (*UserMembership, error)
	ListUserMemberships(userID int64) ([]*UserMembership, error)
	ListPlans() ([]*Plan, error)
	CreatePlan(dto CreatePlanDTO) (*Plan, error)
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

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var dto SubscribeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Subscribe: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	um, err := h.Service.Subscribe(dto)
	if err != nil {
		h.Logger.Error("Subscribe: service error", "error", err, "user_id", dto.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, um)
}

func (h *Handler) GetUserMembership(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	um, err := h.Service.GetUserMembership(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, um)
}

func (h *Handler) ListUserMemberships(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		parsed, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid userId")
			return
		}
		userID = parsed
	}

	ums, err := h.Service.ListUserMemberships(userID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ums)
}

func (h *Handler) ChangePlanOrDates(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto UpdateUserMembershipDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("ChangePlanOrDates: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	um, err := h.Service.ChangePlanOrDates(id, dto)
	if err != nil {
		h.Logger.Error("ChangePlanOrDates: service error", "error", err, "user_membership_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, um)
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	um, err := h.Service.Deactivate(id)
	if err != nil {
		h.Logger.Error("Deactivate: service error", "error", err, "user_membership_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, um)
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Service.ListPlans()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, plans)
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var dto CreatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreatePlan: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.Service.CreatePlan(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, plan)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
