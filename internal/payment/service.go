package payment

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Repository interface {
	GetPayment(id int64) (*datamodel.Payment, error)
	ListPayments(userMembershipID *int64) ([]datamodel.Payment, error)
	CreatePayment(p *datamodel.Payment) error
	UserMembershipExists(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// RecordPayment stores a payment against a membership. Each payment gets
// a generated reference for reconciliation.
func (s *Service) RecordPayment(dto CreatePaymentDTO) (*Payment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payment validation failed", "error", err)
		return nil, err
	}

	exists, err := s.repo.UserMembershipExists(dto.UserMembershipID)
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	if !exists {
		return nil, internal.ErrUserMembershipNotFound
	}

	date := s.now()
	if dto.Date != nil {
		date = *dto.Date
	}

	dm := &datamodel.Payment{
		UserMembershipID: dto.UserMembershipID,
		Amount:           dto.Amount,
		Method:           dto.Method,
		Date:             date,
		Reference:        uuid.NewString(),
	}
	if err := s.repo.CreatePayment(dm); err != nil {
		s.logger.Error("failed to create payment", "error", err, "user_membership_id", dto.UserMembershipID)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("payment recorded", "payment_id", dm.ID,
		"user_membership_id", dm.UserMembershipID, "amount", dm.Amount, "reference", dm.Reference)
	return FromDataModel(dm), nil
}

func (s *Service) GetPayment(id int64) (*Payment, error) {
	dm, err := s.repo.GetPayment(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(dm), nil
}

func (s *Service) ListPayments(userMembershipID *int64) ([]*Payment, error) {
	payments, err := s.repo.ListPayments(userMembershipID)
	if err != nil {
		s.logger.Error("failed to list payments", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(payments), nil
}
