package postgres

import (
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/role"
	"gorm.io/gorm"
)

// RoleRepository implements the role.Repository interface using GORM
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.Repository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetAll() ([]datamodel.Role, error) {
	var roles []datamodel.Role
	err := r.db.Order("id ASC").Find(&roles).Error
	return roles, err
}
