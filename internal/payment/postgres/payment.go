package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetPayment(id int64) (*datamodel.Payment, error) {
	var p datamodel.Payment
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPaymentNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return &p, nil
}

func (r *PaymentRepository) ListPayments(userMembershipID *int64) ([]datamodel.Payment, error) {
	var payments []datamodel.Payment
	query := r.db.Order("date DESC")
	if userMembershipID != nil {
		query = query.Where("user_membership_id = ?", *userMembershipID)
	}
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) CreatePayment(p *datamodel.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) UserMembershipExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&datamodel.UserMembership{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
