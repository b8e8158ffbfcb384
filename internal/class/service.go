package class

import (
	"log/slog"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Repository interface {
	GetClass(id int64) (*datamodel.Class, error)
	ListClasses(trainerID *int64) ([]datamodel.Class, error)
	CreateClass(c *datamodel.Class) error
	SaveClass(c *datamodel.Class) error
	DeleteClass(id int64) error
	TrainerExists(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateClass schedules a class, optionally assigned to a trainer.
func (s *Service) CreateClass(dto CreateClassDTO) (*Class, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("class validation failed", "error", err)
		return nil, err
	}

	if dto.TrainerID != nil {
		if err := s.requireTrainer(*dto.TrainerID); err != nil {
			return nil, err
		}
	}

	dm := &datamodel.Class{
		Name:        dto.Name,
		StartTime:   dto.StartTime,
		DurationMin: dto.DurationMin,
		TrainerID:   dto.TrainerID,
	}
	if err := s.repo.CreateClass(dm); err != nil {
		s.logger.Error("failed to create class", "error", err, "name", dto.Name)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("class created", "class_id", dm.ID, "name", dm.Name)
	return s.GetClass(dm.ID)
}

func (s *Service) GetClass(id int64) (*Class, error) {
	dm, err := s.repo.GetClass(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(dm), nil
}

func (s *Service) ListClasses(trainerID *int64) ([]*Class, error) {
	classes, err := s.repo.ListClasses(trainerID)
	if err != nil {
		s.logger.Error("failed to list classes", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(classes), nil
}

func (s *Service) UpdateClass(id int64, dto UpdateClassDTO) (*Class, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("class update validation failed", "error", err, "class_id", id)
		return nil, err
	}

	dm, err := s.repo.GetClass(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		dm.Name = *dto.Name
	}
	if dto.StartTime != nil {
		dm.StartTime = *dto.StartTime
	}
	if dto.DurationMin != nil {
		dm.DurationMin = *dto.DurationMin
	}
	if dto.TrainerID != nil {
		if err := s.requireTrainer(*dto.TrainerID); err != nil {
			return nil, err
		}
		dm.TrainerID = dto.TrainerID
	}

	if err := s.repo.SaveClass(dm); err != nil {
		s.logger.Error("failed to update class", "error", err, "class_id", id)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("class updated", "class_id", id)
	return s.GetClass(id)
}

func (s *Service) DeleteClass(id int64) error {
	if _, err := s.repo.GetClass(id); err != nil {
		return err
	}
	if err := s.repo.DeleteClass(id); err != nil {
		s.logger.Error("failed to delete class", "error", err, "class_id", id)
		return internal.NewPersistenceError(err)
	}
	s.logger.Info("class deleted", "class_id", id)
	return nil
}

func (s *Service) requireTrainer(id int64) error {
	exists, err := s.repo.TrainerExists(id)
	if err != nil {
		return internal.NewPersistenceError(err)
	}
	if !exists {
		return internal.ErrTrainerNotFound
	}
	return nil
}
