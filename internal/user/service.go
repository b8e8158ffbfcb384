package user

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/role"
)

type Repository interface {
	Transaction(fn func(tx Repository) error) error

	GetUser(id int64) (*datamodel.User, error)
	GetUserByEmail(email string) (*datamodel.User, error)
	ListUsers(roleID *int64) ([]datamodel.User, error)
	CreateUser(u *datamodel.User) error
	SaveUser(u *datamodel.User) error
	DeleteUser(id int64) error
	ReplacePhoneNumbers(userID int64, numbers []string) error
}

type RoleResolver interface {
	ResolveRoleID(name string) (int64, error)
	RoleName(id int64) (string, error)
}

type Service struct {
	repo       Repository
	roles      RoleResolver
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, roles RoleResolver, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		roles:      roles,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account with the USER role. Email uniqueness is
// checked up front and backed by a unique index.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("register validation failed", "error", err)
		return nil, err
	}

	if _, err := s.repo.GetUserByEmail(dto.Email); err == nil {
		return nil, internal.ErrEmailTaken
	} else if !errors.Is(err, internal.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	roleID, err := s.roles.ResolveRoleID(role.User)
	if err != nil {
		return nil, err
	}

	dm := &datamodel.User{
		Email:        dto.Email,
		PasswordHash: string(hash),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		BirthDate:    dto.BirthDate,
		RoleID:       roleID,
	}
	for _, number := range dto.PhoneNumbers {
		dm.PhoneNumbers = append(dm.PhoneNumbers, datamodel.PhoneNumber{Number: number})
	}

	if err := s.repo.CreateUser(dm); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("user registered", "user_id", dm.ID, "email", dm.Email)
	return s.GetUser(dm.ID)
}

func (s *Service) GetUser(id int64) (*User, error) {
	dm, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(dm), nil
}

// ListUsers returns all accounts, optionally filtered by role name.
func (s *Service) ListUsers(roleName string) ([]*User, error) {
	var roleID *int64
	if roleName != "" {
		id, err := s.roles.ResolveRoleID(roleName)
		if err != nil {
			return nil, err
		}
		roleID = &id
	}

	users, err := s.repo.ListUsers(roleID)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(users), nil
}

func (s *Service) UpdateUser(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user update validation failed", "error", err, "user_id", id)
		return nil, err
	}

	err := s.repo.Transaction(func(tx Repository) error {
		dm, err := tx.GetUser(id)
		if err != nil {
			return err
		}

		if dto.Email != nil && *dto.Email != dm.Email {
			existing, err := tx.GetUserByEmail(*dto.Email)
			if err == nil && existing.ID != id {
				return internal.ErrEmailTaken
			}
			if err != nil && !errors.Is(err, internal.ErrUserNotFound) {
				return err
			}
			dm.Email = *dto.Email
		}
		if dto.FirstName != nil {
			dm.FirstName = *dto.FirstName
		}
		if dto.LastName != nil {
			dm.LastName = *dto.LastName
		}
		if dto.BirthDate != nil {
			dm.BirthDate = dto.BirthDate
		}
		if dto.Role != nil {
			roleID, err := s.roles.ResolveRoleID(*dto.Role)
			if err != nil {
				return err
			}
			dm.RoleID = roleID
		}

		if err := tx.SaveUser(dm); err != nil {
			return internal.NewPersistenceError(err)
		}

		if dto.PhoneNumbers != nil {
			if err := tx.ReplacePhoneNumbers(id, *dto.PhoneNumbers); err != nil {
				return internal.NewPersistenceError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", id)
	return s.GetUser(id)
}

func (s *Service) DeleteUser(id int64) error {
	if _, err := s.repo.GetUser(id); err != nil {
		return err
	}
	if err := s.repo.DeleteUser(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return internal.NewPersistenceError(err)
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
