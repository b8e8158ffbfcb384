package postgres

import (
	"errors"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/membership"
	"gorm.io/gorm"
)

// MembershipRepository implements the membership.Repository interface using GORM
type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) membership.Repository {
	return &MembershipRepository{db: db}
}

// Transaction runs fn against a repository bound to one transaction; any
// error rolls the whole unit back.
func (r *MembershipRepository) Transaction(fn func(tx membership.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&MembershipRepository{db: tx})
	})
}

func (r *MembershipRepository) GetPlan(id int64) (*datamodel.Membership, error) {
	var plan datamodel.Membership
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPlanNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &plan, nil
}

func (r *MembershipRepository) ListPlans() ([]datamodel.Membership, error) {
	var plans []datamodel.Membership
	err := r.db.Order("name ASC").Order("duration_months ASC").Find(&plans).Error
	return plans, err
}

func (r *MembershipRepository) CreatePlan(plan *datamodel.Membership) error {
	return r.db.Create(plan).Error
}

func (r *MembershipRepository) GetUserMembership(id int64) (*datamodel.UserMembership, error) {
	var um datamodel.UserMembership
	err := r.db.
		Preload("User").
		Preload("Membership").
		Preload("Payments").
		Where("id = ?", id).
		First(&um).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserMembershipNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &um, nil
}

func (r *MembershipRepository) ListUserMemberships() ([]datamodel.UserMembership, error) {
	var ums []datamodel.UserMembership
	err := r.db.
		Preload("User").
		Preload("Membership").
		Order("start_date DESC").
		Find(&ums).Error
	return ums, err
}

func (r *MembershipRepository) ListUserMembershipsByUser(userID int64) ([]datamodel.UserMembership, error) {
	var ums []datamodel.UserMembership
	err := r.db.
		Preload("User").
		Preload("Membership").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&ums).Error
	return ums, err
}

func (r *MembershipRepository) CountActiveForUser(userID, excludeID int64) (int64, error) {
	var count int64
	q := r.db.Model(&datamodel.UserMembership{}).
		Where("user_id = ? AND active = ?", userID, true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *MembershipRepository) CreateUserMembership(um *datamodel.UserMembership) error {
	return r.db.Omit("User", "Membership", "Payments").Create(um).Error
}

func (r *MembershipRepository) SaveUserMembership(um *datamodel.UserMembership) error {
	return r.db.Omit("User", "Membership", "Payments").Save(um).Error
}

func (r *MembershipRepository) GetUserWithEmployee(id int64) (*datamodel.User, error) {
	var user datamodel.User
	err := r.db.Preload("Employee").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &user, nil
}

func (r *MembershipRepository) UpdateUserRole(userID, roleID int64) error {
	return r.db.Model(&datamodel.User{}).
		Where("id = ?", userID).
		Update("role_id", roleID).Error
}
