package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Transaction(fn func(tx employee.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&EmployeeRepository{db: tx})
	})
}

func (r *EmployeeRepository) GetEmployee(id int64) (*datamodel.Employee, error) {
	var emp datamodel.Employee
	err := r.db.
		Preload("User").
		Preload("Trainer").
		Preload("Trainer.Supervisor").
		Preload("Receptionist").
		First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &emp, nil
}

func (r *EmployeeRepository) ListEmployees() ([]datamodel.Employee, error) {
	var employees []datamodel.Employee
	err := r.db.
		Preload("User").
		Preload("Trainer").
		Preload("Receptionist").
		Order("id ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) CreateEmployee(e *datamodel.Employee) error {
	return r.db.Omit("User", "Trainer", "Receptionist").Create(e).Error
}

func (r *EmployeeRepository) SaveEmployee(e *datamodel.Employee) error {
	return r.db.Omit("User", "Trainer", "Receptionist").Save(e).Error
}

// DeleteEmployee removes the trainer and receptionist rows before the
// employee row so the delete works even without cascading constraints.
func (r *EmployeeRepository) DeleteEmployee(id int64) error {
	if err := r.db.Where("employee_id = ?", id).Delete(&datamodel.Trainer{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("employee_id = ?", id).Delete(&datamodel.Receptionist{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&datamodel.Employee{}, id).Error
}

func (r *EmployeeRepository) GetTrainer(id int64) (*datamodel.Trainer, error) {
	var trainer datamodel.Trainer
	err := r.db.
		Preload("Supervisor").
		Preload("Subordinates").
		Preload("Classes").
		First(&trainer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTrainerNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &trainer, nil
}

func (r *EmployeeRepository) ListTrainers() ([]datamodel.Trainer, error) {
	var trainers []datamodel.Trainer
	err := r.db.
		Preload("Supervisor").
		Preload("Classes").
		Order("id ASC").
		Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *EmployeeRepository) CreateTrainer(t *datamodel.Trainer) error {
	return r.db.Omit("Supervisor", "Subordinates", "Classes").Create(t).Error
}

func (r *EmployeeRepository) SaveTrainer(t *datamodel.Trainer) error {
	return r.db.Omit("Supervisor", "Subordinates", "Classes").Save(t).Error
}

func (r *EmployeeRepository) ListReceptionists() ([]datamodel.Receptionist, error) {
	var receptionists []datamodel.Receptionist
	err := r.db.Order("id ASC").Find(&receptionists).Error
	if err != nil {
		return nil, err
	}
	return receptionists, nil
}

func (r *EmployeeRepository) CreateReceptionist(rec *datamodel.Receptionist) error {
	return r.db.Create(rec).Error
}

func (r *EmployeeRepository) SaveReceptionist(rec *datamodel.Receptionist) error {
	return r.db.Save(rec).Error
}

func (r *EmployeeRepository) GetUserWithEmployee(id int64) (*datamodel.User, error) {
	var user datamodel.User
	err := r.db.Preload("Employee").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &user, nil
}

func (r *EmployeeRepository) CountActiveMemberships(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&datamodel.UserMembership{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *EmployeeRepository) UpdateUserRole(userID, roleID int64) error {
	return r.db.Model(&datamodel.User{}).Where("id = ?", userID).Update("role_id", roleID).Error
}
