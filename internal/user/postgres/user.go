package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Transaction(fn func(tx user.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&UserRepository{db: tx})
	})
}

func (r *UserRepository) GetUser(id int64) (*datamodel.User, error) {
	var u datamodel.User
	err := r.db.
		Preload("Role").
		Preload("PhoneNumbers").
		Preload("Memberships").
		Preload("Memberships.Membership").
		Preload("Employee").
		First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &u, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*datamodel.User, error) {
	var u datamodel.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &u, nil
}

func (r *UserRepository) ListUsers(roleID *int64) ([]datamodel.User, error) {
	var users []datamodel.User
	query := r.db.
		Preload("Role").
		Preload("PhoneNumbers").
		Order("id ASC")
	if roleID != nil {
		query = query.Where("role_id = ?", *roleID)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) CreateUser(u *datamodel.User) error {
	return r.db.Omit("Role", "Memberships", "CheckIns", "Employee").Create(u).Error
}

func (r *UserRepository) SaveUser(u *datamodel.User) error {
	return r.db.Omit("Role", "PhoneNumbers", "Memberships", "CheckIns", "Employee").Save(u).Error
}

func (r *UserRepository) DeleteUser(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&datamodel.PhoneNumber{}).Error; err != nil {
			return err
		}
		return tx.Delete(&datamodel.User{}, id).Error
	})
}

func (r *UserRepository) ReplacePhoneNumbers(userID int64, numbers []string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&datamodel.PhoneNumber{}).Error; err != nil {
		return err
	}
	if len(numbers) == 0 {
		return nil
	}
	rows := make([]datamodel.PhoneNumber, 0, len(numbers))
	for _, number := range numbers {
		rows = append(rows, datamodel.PhoneNumber{UserID: userID, Number: number})
	}
	return r.db.Create(&rows).Error
}
