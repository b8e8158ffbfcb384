package employee

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/transport"
)

type ServiceAPI interface {
	Hire(dto HireDTO) (*Employee, error)
	UpdateEmployee(id int64, dto UpdateEmployeeDTO) (*Employee, error)
	Terminate(id int64) error
	GetEmployee(id int64) (*Employee, error)
	ListEmployees() ([]*Employee, error)
	GetTrainer(id int64) (*Trainer, error)
	ListTrainers() ([]*Trainer, error)
	ListReceptionists() ([]*Receptionist, error)
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

func (h *Handler) Hire(w http.ResponseWriter, r *http.Request) {
	var dto HireDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid hire payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Hire(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	emp, err := h.Service.GetEmployee(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid employee update payload", "error", err, "employee_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.UpdateEmployee(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Terminate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.Service.Terminate(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "employee terminated"})
}

func (h *Handler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid trainer id")
		return
	}

	trainer, err := h.Service.GetTrainer(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, trainer)
}

func (h *Handler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.Service.ListTrainers()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, trainers)
}

func (h *Handler) ListReceptionists(w http.ResponseWriter, r *http.Request) {
	receptionists, err := h.Service.ListReceptionists()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, receptionists)
}

func parseID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal.NewValidationError("invalid id", internal.ErrCodeValidationFailed)
	}
	return id, nil
}
