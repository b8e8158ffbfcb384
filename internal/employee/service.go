package employee

import (
	"log/slog"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/role"
)

// Repository defines the data access methods for employees. Transaction
// binds a repository to one database transaction so the employee write and
// its derived role write commit or roll back together.
type Repository interface {
	Transaction(fn func(tx Repository) error) error

	GetEmployee(id int64) (*datamodel.Employee, error)
	ListEmployees() ([]datamodel.Employee, error)
	CreateEmployee(e *datamodel.Employee) error
	SaveEmployee(e *datamodel.Employee) error
	DeleteEmployee(id int64) error

	GetTrainer(id int64) (*datamodel.Trainer, error)
	ListTrainers() ([]datamodel.Trainer, error)
	CreateTrainer(t *datamodel.Trainer) error
	SaveTrainer(t *datamodel.Trainer) error

	ListReceptionists() ([]datamodel.Receptionist, error)
	CreateReceptionist(rec *datamodel.Receptionist) error
	SaveReceptionist(rec *datamodel.Receptionist) error

	GetUserWithEmployee(id int64) (*datamodel.User, error)
	CountActiveMemberships(userID int64) (int64, error)
	UpdateUserRole(userID, roleID int64) error
}

// RoleResolver maps role names to stored identifiers and back.
type RoleResolver interface {
	ResolveRoleID(name string) (int64, error)
	RoleName(id int64) (string, error)
}

// Service owns the employment lifecycle: hire, update and terminate staff,
// keeping the owning user's role in step.
type Service struct {
	repo   Repository
	roles  RoleResolver
	logger *slog.Logger
}

func NewService(repo Repository, roles RoleResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		roles:  roles,
		logger: logger,
	}
}

// Hire creates an employee for a user, with optional trainer and
// receptionist extensions. Trainer fields take priority over receptionist
// fields when deriving the new role; with neither, the role is untouched.
func (s *Service) Hire(dto HireDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("hire validation failed", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	var createdID int64
	err := s.repo.Transaction(func(tx Repository) error {
		user, err := tx.GetUserWithEmployee(dto.UserID)
		if err != nil {
			return err
		}
		if user.Employee != nil {
			return internal.ErrAlreadyEmployee
		}

		if dto.Trainer != nil && dto.Trainer.SupervisorID != nil {
			if _, err := tx.GetTrainer(*dto.Trainer.SupervisorID); err != nil {
				return internal.ErrSupervisorNotFound
			}
		}

		emp := &datamodel.Employee{
			UserID:   dto.UserID,
			HireDate: dto.HireDate,
			Salary:   dto.Salary,
		}
		if err := tx.CreateEmployee(emp); err != nil {
			return internal.NewPersistenceError(err)
		}

		if dto.Trainer != nil {
			trainer := &datamodel.Trainer{
				EmployeeID:      emp.ID,
				Specialization:  *dto.Trainer.Specialization,
				ExperienceYears: *dto.Trainer.ExperienceYears,
				SupervisorID:    dto.Trainer.SupervisorID,
			}
			if err := tx.CreateTrainer(trainer); err != nil {
				return internal.NewPersistenceError(err)
			}
		}
		if dto.Receptionist != nil {
			rec := &datamodel.Receptionist{
				EmployeeID: emp.ID,
				ShiftHours: *dto.Receptionist.ShiftHours,
			}
			if err := tx.CreateReceptionist(rec); err != nil {
				return internal.NewPersistenceError(err)
			}
		}

		switch {
		case dto.Trainer != nil:
			if err := s.setRole(tx, dto.UserID, role.Trainer); err != nil {
				return err
			}
		case dto.Receptionist != nil:
			if err := s.setRole(tx, dto.UserID, role.Receptionist); err != nil {
				return err
			}
		}

		createdID = emp.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee hired", "employee_id", createdID, "user_id", dto.UserID,
		"trainer", dto.Trainer != nil, "receptionist", dto.Receptionist != nil)

	return s.GetEmployee(createdID)
}

// UpdateEmployee applies a partial update. Trainer and receptionist
// sub-records are created when absent (the full field pair is required)
// and patched in place when present.
func (s *Service) UpdateEmployee(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee update validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	err := s.repo.Transaction(func(tx Repository) error {
		emp, err := tx.GetEmployee(id)
		if err != nil {
			return err
		}

		if dto.HireDate != nil {
			emp.HireDate = *dto.HireDate
		}
		if dto.Salary != nil {
			emp.Salary = *dto.Salary
		}
		if dto.HireDate != nil || dto.Salary != nil {
			if err := tx.SaveEmployee(emp); err != nil {
				return internal.NewPersistenceError(err)
			}
		}

		if dto.Trainer != nil {
			if err := s.applyTrainerPatch(tx, emp, dto.Trainer); err != nil {
				return err
			}
		}
		if dto.Receptionist != nil {
			if err := s.applyReceptionistPatch(tx, emp, dto.Receptionist); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id)
	return s.GetEmployee(id)
}

// Terminate hard-deletes the employee and its extensions, then recomputes
// the user's role: staff roles fall back to MEMBER when an active
// membership remains, USER otherwise. ADMIN is out-of-band and untouched.
func (s *Service) Terminate(id int64) error {
	err := s.repo.Transaction(func(tx Repository) error {
		emp, err := tx.GetEmployee(id)
		if err != nil {
			return err
		}

		if err := tx.DeleteEmployee(emp.ID); err != nil {
			return internal.NewPersistenceError(err)
		}

		currentRole, err := s.roles.RoleName(emp.User.RoleID)
		if err != nil {
			return err
		}
		if currentRole != role.Trainer && currentRole != role.Receptionist {
			return nil
		}

		active, err := tx.CountActiveMemberships(emp.UserID)
		if err != nil {
			return internal.NewPersistenceError(err)
		}

		newRole := role.User
		if active > 0 {
			newRole = role.Member
		}
		return s.setRole(tx, emp.UserID, newRole)
	})
	if err != nil {
		return err
	}

	s.logger.Info("employee terminated", "employee_id", id)
	return nil
}

func (s *Service) GetEmployee(id int64) (*Employee, error) {
	emp, err := s.repo.GetEmployee(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(emp), nil
}

func (s *Service) ListEmployees() ([]*Employee, error) {
	employees, err := s.repo.ListEmployees()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(employees), nil
}

func (s *Service) GetTrainer(id int64) (*Trainer, error) {
	trainer, err := s.repo.GetTrainer(id)
	if err != nil {
		return nil, err
	}
	return trainerFromDataModel(trainer), nil
}

func (s *Service) ListTrainers() ([]*Trainer, error) {
	trainers, err := s.repo.ListTrainers()
	if err != nil {
		s.logger.Error("failed to list trainers", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return TrainersFromDataModel(trainers), nil
}

func (s *Service) ListReceptionists() ([]*Receptionist, error) {
	receptionists, err := s.repo.ListReceptionists()
	if err != nil {
		s.logger.Error("failed to list receptionists", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return ReceptionistsFromDataModel(receptionists), nil
}

func (s *Service) applyTrainerPatch(tx Repository, emp *datamodel.Employee, patch *TrainerFieldsDTO) error {
	if patch.SupervisorID != nil {
		if _, err := tx.GetTrainer(*patch.SupervisorID); err != nil {
			return internal.ErrSupervisorNotFound
		}
	}

	if emp.Trainer == nil {
		if err := validateTrainerCreate(patch); err != nil {
			return err
		}
		trainer := &datamodel.Trainer{
			EmployeeID:      emp.ID,
			Specialization:  *patch.Specialization,
			ExperienceYears: *patch.ExperienceYears,
			SupervisorID:    patch.SupervisorID,
		}
		if err := tx.CreateTrainer(trainer); err != nil {
			return internal.NewPersistenceError(err)
		}
		return nil
	}

	if patch.Specialization != nil {
		emp.Trainer.Specialization = *patch.Specialization
	}
	if patch.ExperienceYears != nil {
		emp.Trainer.ExperienceYears = *patch.ExperienceYears
	}
	if patch.SupervisorID != nil {
		emp.Trainer.SupervisorID = patch.SupervisorID
	}
	if err := tx.SaveTrainer(emp.Trainer); err != nil {
		return internal.NewPersistenceError(err)
	}
	return nil
}

func (s *Service) applyReceptionistPatch(tx Repository, emp *datamodel.Employee, patch *ReceptionistFieldsDTO) error {
	if emp.Receptionist == nil {
		if patch.ShiftHours == nil || *patch.ShiftHours == "" {
			return internal.NewValidationFieldError("receptionist.shift_hours", "shift_hours is required", internal.ErrCodeValidationFailed)
		}
		rec := &datamodel.Receptionist{
			EmployeeID: emp.ID,
			ShiftHours: *patch.ShiftHours,
		}
		if err := tx.CreateReceptionist(rec); err != nil {
			return internal.NewPersistenceError(err)
		}
		return nil
	}

	if patch.ShiftHours != nil {
		emp.Receptionist.ShiftHours = *patch.ShiftHours
	}
	if err := tx.SaveReceptionist(emp.Receptionist); err != nil {
		return internal.NewPersistenceError(err)
	}
	return nil
}

func (s *Service) setRole(tx Repository, userID int64, name string) error {
	roleID, err := s.roles.ResolveRoleID(name)
	if err != nil {
		return err
	}
	if err := tx.UpdateUserRole(userID, roleID); err != nil {
		return internal.NewPersistenceError(err)
	}
	return nil
}
