package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/equipment"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Transaction(fn func(tx equipment.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&EquipmentRepository{db: tx})
	})
}

func (r *EquipmentRepository) GetEquipment(id int64) (*datamodel.Equipment, error) {
	var e datamodel.Equipment
	err := r.db.
		Preload("Maintenance", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEquipmentNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &e, nil
}

func (r *EquipmentRepository) ListEquipment(category *string) ([]datamodel.Equipment, error) {
	var items []datamodel.Equipment
	query := r.db.Order("id ASC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EquipmentRepository) CreateEquipment(e *datamodel.Equipment) error {
	return r.db.Omit("Maintenance").Create(e).Error
}

func (r *EquipmentRepository) SaveEquipment(e *datamodel.Equipment) error {
	return r.db.Omit("Maintenance").Save(e).Error
}

func (r *EquipmentRepository) DeleteEquipment(id int64) error {
	return r.db.Delete(&datamodel.Equipment{}, id).Error
}

func (r *EquipmentRepository) ListMaintenance(equipmentID int64) ([]datamodel.Maintenance, error) {
	var records []datamodel.Maintenance
	err := r.db.
		Where("equipment_id = ?", equipmentID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *EquipmentRepository) CreateMaintenance(m *datamodel.Maintenance) error {
	return r.db.Create(m).Error
}

func (r *EquipmentRepository) DeleteMaintenanceForEquipment(equipmentID int64) error {
	return r.db.Where("equipment_id = ?", equipmentID).Delete(&datamodel.Maintenance{}).Error
}
