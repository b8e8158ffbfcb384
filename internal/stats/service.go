package stats

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/gym-management/internal"
)

type Repository interface {
	UsersByRole(ctx context.Context) ([]RoleCount, error)
	FrequentVisitors(ctx context.Context) ([]UserCheckIns, error)
	UsersWithoutCheckIns(ctx context.Context) ([]UserSummary, error)
	EquipmentLatestMaintenance(ctx context.Context) ([]EquipmentLatest, error)
	AboveAverageMemberships(ctx context.Context) ([]MembershipPrice, error)
	StaffUsers(ctx context.Context) ([]UserSummary, error)
	ActiveMembers(ctx context.Context) ([]UserSummary, error)
	EquipmentAboveAnyPlan(ctx context.Context) ([]EquipmentPrice, error)
	EquipmentAboveAllPlans(ctx context.Context) ([]EquipmentPrice, error)
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

// Dashboard runs every aggregate sequentially. A single failing query
// fails the whole report rather than returning a partial one.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}
	var err error

	if d.UsersByRole, err = s.repo.UsersByRole(ctx); err != nil {
		return nil, s.queryError("users_by_role", err)
	}
	if d.FrequentVisitors, err = s.repo.FrequentVisitors(ctx); err != nil {
		return nil, s.queryError("frequent_visitors", err)
	}
	if d.UsersWithoutCheckIns, err = s.repo.UsersWithoutCheckIns(ctx); err != nil {
		return nil, s.queryError("users_without_check_ins", err)
	}
	if d.EquipmentMaintenance, err = s.repo.EquipmentLatestMaintenance(ctx); err != nil {
		return nil, s.queryError("equipment_latest_maintenance", err)
	}
	if d.AboveAverageMemberships, err = s.repo.AboveAverageMemberships(ctx); err != nil {
		return nil, s.queryError("above_average_memberships", err)
	}
	if d.StaffUsers, err = s.repo.StaffUsers(ctx); err != nil {
		return nil, s.queryError("staff_users", err)
	}
	if d.ActiveMembers, err = s.repo.ActiveMembers(ctx); err != nil {
		return nil, s.queryError("active_members", err)
	}
	if d.EquipmentAboveAnyPlan, err = s.repo.EquipmentAboveAnyPlan(ctx); err != nil {
		return nil, s.queryError("equipment_above_any_plan", err)
	}
	if d.EquipmentAboveAllPlans, err = s.repo.EquipmentAboveAllPlans(ctx); err != nil {
		return nil, s.queryError("equipment_above_all_plans", err)
	}

	return d, nil
}

func (s *Service) queryError(name string, err error) error {
	s.logger.Error("stats query failed", "query", name, "error", err)
	return internal.NewPersistenceError(err)
}
