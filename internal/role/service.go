package role

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

// Repository defines the data access methods for roles.
type Repository interface {
	GetAll() ([]datamodel.Role, error)
}

// Service resolves semantic role names to their stored identifiers. Roles
// are seed data, so the full table is loaded once and cached; a name that
// is missing from the table is a deployment defect, not user input.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu     sync.RWMutex
	byName map[string]int64
	byID   map[int64]string
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ResolveRoleID maps a role name to its identifier. Unknown names are a
// validation error; known names absent from the table are a configuration
// error.
func (s *Service) ResolveRoleID(name string) (int64, error) {
	if !IsValidName(name) {
		return 0, internal.NewValidationError(
			fmt.Sprintf("invalid role %q", name), internal.ErrCodeInvalidRole)
	}

	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	id, ok := s.byName[name]
	s.mu.RUnlock()
	if !ok {
		s.logger.Error("role missing from seed data", "role", name)
		return 0, internal.NewConfigurationError(
			fmt.Sprintf("role %s not seeded", name), nil)
	}
	return id, nil
}

// RoleName maps a stored identifier back to its name.
func (s *Service) RoleName(id int64) (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}

	s.mu.RLock()
	name, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		s.logger.Error("unknown role id", "role_id", id)
		return "", internal.NewConfigurationError(
			fmt.Sprintf("role id %d not seeded", id), nil)
	}
	return name, nil
}

func (s *Service) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.byName != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byName != nil {
		return nil
	}

	roles, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load roles", "error", err)
		return internal.NewPersistenceError(err)
	}

	byName := make(map[string]int64, len(roles))
	byID := make(map[int64]string, len(roles))
	for _, r := range roles {
		byName[r.Name] = r.ID
		byID[r.ID] = r.Name
	}
	s.byName = byName
	s.byID = byID
	return nil
}
