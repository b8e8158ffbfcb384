package equipment

import (
	"log/slog"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Repository interface {
	Transaction(fn func(tx Repository) error) error

	GetEquipment(id int64) (*datamodel.Equipment, error)
	ListEquipment(category *string) ([]datamodel.Equipment, error)
	CreateEquipment(e *datamodel.Equipment) error
	SaveEquipment(e *datamodel.Equipment) error
	DeleteEquipment(id int64) error

	ListMaintenance(equipmentID int64) ([]datamodel.Maintenance, error)
	CreateMaintenance(m *datamodel.Maintenance) error
	DeleteMaintenanceForEquipment(equipmentID int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateEquipment(dto CreateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("equipment validation failed", "error", err)
		return nil, err
	}

	dm := &datamodel.Equipment{
		Name:          dto.Name,
		Category:      dto.Category,
		Condition:     dto.Condition,
		PurchaseDate:  dto.PurchaseDate,
		PurchasePrice: dto.PurchasePrice,
	}
	if err := s.repo.CreateEquipment(dm); err != nil {
		s.logger.Error("failed to create equipment", "error", err, "name", dto.Name)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("equipment created", "equipment_id", dm.ID, "name", dm.Name)
	return FromDataModel(dm), nil
}

func (s *Service) GetEquipment(id int64) (*Equipment, error) {
	dm, err := s.repo.GetEquipment(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(dm), nil
}

func (s *Service) ListEquipment(category string) ([]*Equipment, error) {
	var filter *string
	if category != "" {
		filter = &category
	}
	items, err := s.repo.ListEquipment(filter)
	if err != nil {
		s.logger.Error("failed to list equipment", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(items), nil
}

func (s *Service) UpdateEquipment(id int64, dto UpdateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("equipment update validation failed", "error", err, "equipment_id", id)
		return nil, err
	}

	dm, err := s.repo.GetEquipment(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		dm.Name = *dto.Name
	}
	if dto.Category != nil {
		dm.Category = *dto.Category
	}
	if dto.Condition != nil {
		dm.Condition = *dto.Condition
	}
	if dto.PurchaseDate != nil {
		dm.PurchaseDate = *dto.PurchaseDate
	}
	if dto.PurchasePrice != nil {
		dm.PurchasePrice = dto.PurchasePrice
	}

	if err := s.repo.SaveEquipment(dm); err != nil {
		s.logger.Error("failed to update equipment", "error", err, "equipment_id", id)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("equipment updated", "equipment_id", id)
	return FromDataModel(dm), nil
}

// DeleteEquipment removes maintenance history and the equipment row in one
// transaction, so a failure partway leaves both intact.
func (s *Service) DeleteEquipment(id int64) error {
	err := s.repo.Transaction(func(tx Repository) error {
		if _, err := tx.GetEquipment(id); err != nil {
			return err
		}
		if err := tx.DeleteMaintenanceForEquipment(id); err != nil {
			return internal.NewPersistenceError(err)
		}
		if err := tx.DeleteEquipment(id); err != nil {
			return internal.NewPersistenceError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("equipment deleted", "equipment_id", id)
	return nil
}

func (s *Service) AddMaintenance(equipmentID int64, dto CreateMaintenanceDTO) (*Maintenance, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("maintenance validation failed", "error", err, "equipment_id", equipmentID)
		return nil, err
	}

	if _, err := s.repo.GetEquipment(equipmentID); err != nil {
		return nil, err
	}

	dm := &datamodel.Maintenance{
		EquipmentID: equipmentID,
		Date:        dto.Date,
		Cost:        dto.Cost,
		Description: dto.Description,
	}
	if err := s.repo.CreateMaintenance(dm); err != nil {
		s.logger.Error("failed to create maintenance record", "error", err, "equipment_id", equipmentID)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("maintenance recorded", "maintenance_id", dm.ID, "equipment_id", equipmentID)
	return maintenanceFromDataModel(dm), nil
}

func (s *Service) ListMaintenance(equipmentID int64) ([]*Maintenance, error) {
	if _, err := s.repo.GetEquipment(equipmentID); err != nil {
		return nil, err
	}

	records, err := s.repo.ListMaintenance(equipmentID)
	if err != nil {
		s.logger.Error("failed to list maintenance", "error", err, "equipment_id", equipmentID)
		return nil, internal.NewPersistenceError(err)
	}
	return MaintenanceFromDataModelSlice(records), nil
}
