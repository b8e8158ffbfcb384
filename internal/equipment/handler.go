package equipment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/gym-management/internal/transport"
)

type ServiceAPI interface {
	CreateEquipment(dto CreateEquipmentDTO) (*Equipment, error)
	GetEquipment(id int64) (*Equipment, error)
	ListEquipment(category string) ([]*Equipment, error)
	UpdateEquipment(id int64, dto UpdateEquipmentDTO) (*Equipment, error)
	DeleteEquipment(id int64) error
	AddMaintenance(equipmentID int64, dto CreateMaintenanceDTO) (*Maintenance, error)
	ListMaintenance(equipmentID int64) ([]*Maintenance, error)
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

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var dto CreateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid equipment payload", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.CreateEquipment(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	e, err := h.Service.GetEquipment(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListEquipment(r.URL.Query().Get("category"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	var dto UpdateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid equipment update payload", "error", err, "equipment_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.UpdateEquipment(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	if err := h.Service.DeleteEquipment(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "equipment deleted"})
}

func (h *Handler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	var dto CreateMaintenanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid maintenance payload", "error", err, "equipment_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.Service.AddMaintenance(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	records, err := h.Service.ListMaintenance(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
