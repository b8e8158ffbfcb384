package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) GetClass(id int64) (*datamodel.Class, error) {
	var c datamodel.Class
	if err := r.db.Preload("Trainer").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrClassNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &c, nil
}

func (r *ClassRepository) ListClasses(trainerID *int64) ([]datamodel.Class, error) {
	var classes []datamodel.Class
	query := r.db.Preload("Trainer").Order("start_time ASC")
	if trainerID != nil {
		query = query.Where("trainer_id = ?", *trainerID)
	}
	if err := query.Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) CreateClass(c *datamodel.Class) error {
	return r.db.Omit("Trainer").Create(c).Error
}

func (r *ClassRepository) SaveClass(c *datamodel.Class) error {
	return r.db.Omit("Trainer").Save(c).Error
}

func (r *ClassRepository) DeleteClass(id int64) error {
	return r.db.Delete(&datamodel.Class{}, id).Error
}

func (r *ClassRepository) TrainerExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&datamodel.Trainer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
