package payment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/gym-management/internal/transport"
)

type ServiceAPI interface {
	RecordPayment(dto CreatePaymentDTO) (*Payment, error)
	GetPayment(id int64) (*Payment, error)
	ListPayments(userMembershipID *int64) ([]*Payment, error)
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

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var dto CreatePaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid payment payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.RecordPayment(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	p, err := h.Service.GetPayment(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var userMembershipID *int64
	if raw := r.URL.Query().Get("userMembershipId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.WriteError(w, http.StatusBadRequest, "invalid userMembershipId filter")
			return
		}
		userMembershipID = &parsed
	}

	payments, err := h.Service.ListPayments(userMembershipID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, payments)
}
