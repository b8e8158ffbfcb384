package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) GetCheckIn(id int64) (*datamodel.CheckIn, error) {
	var c datamodel.CheckIn
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrCheckInNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &c, nil
}

func (r *CheckInRepository) ListCheckIns(userID *int64) ([]datamodel.CheckIn, error) {
	var checkIns []datamodel.CheckIn
	query := r.db.Order("check_in_time DESC")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *CheckInRepository) CreateCheckIn(c *datamodel.CheckIn) error {
	return r.db.Create(c).Error
}

func (r *CheckInRepository) UserExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&datamodel.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
