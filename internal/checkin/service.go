package checkin

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Repository interface {
	GetCheckIn(id int64) (*datamodel.CheckIn, error)
	ListCheckIns(userID *int64) ([]datamodel.CheckIn, error)
	CreateCheckIn(c *datamodel.CheckIn) error
	UserExists(id int64) (bool, error)
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

// CheckIn records a gym visit. The timestamp defaults to now when the
// caller omits it.
func (s *Service) CheckIn(dto CreateCheckInDTO) (*CheckIn, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("check-in validation failed", "error", err)
		return nil, err
	}

	exists, err := s.repo.UserExists(dto.UserID)
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	if !exists {
		return nil, internal.ErrUserNotFound
	}

	checkInTime := s.now()
	if dto.CheckInTime != nil {
		checkInTime = *dto.CheckInTime
	}

	dm := &datamodel.CheckIn{
		UserID:      dto.UserID,
		CheckInTime: checkInTime,
	}
	if err := s.repo.CreateCheckIn(dm); err != nil {
		s.logger.Error("failed to create check-in", "error", err, "user_id", dto.UserID)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("check-in recorded", "check_in_id", dm.ID, "user_id", dm.UserID)
	return FromDataModel(dm), nil
}

func (s *Service) GetCheckIn(id int64) (*CheckIn, error) {
	dm, err := s.repo.GetCheckIn(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(dm), nil
}

// ListCheckIns returns visits, newest first, optionally for one user.
func (s *Service) ListCheckIns(userID *int64) ([]*CheckIn, error) {
	checkIns, err := s.repo.ListCheckIns(userID)
	if err != nil {
		s.logger.Error("failed to list check-ins", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(checkIns), nil
}
