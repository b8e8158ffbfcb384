package membership

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/core/datamodel"
	"github.com/frahmantamala/gym-management/internal/role"
)

// Repository defines the data access methods for memberships. Transaction
// returns a Repository bound to one database transaction so a use case can
// pair its entity write with the derived role write atomically.
type Repository interface {
	Transaction(fn func(tx Repository) error) error

	GetPlan(id int64) (*datamodel.Membership, error)
	ListPlans() ([]datamodel.Membership, error)
	CreatePlan(plan *datamodel.Membership) error

	GetUserMembership(id int64) (*datamodel.UserMembership, error)
	ListUserMemberships() ([]datamodel.UserMembership, error)
	ListUserMembershipsByUser(userID int64) ([]datamodel.UserMembership, error)
	CountActiveForUser(userID, excludeID int64) (int64, error)
	CreateUserMembership(um *datamodel.UserMembership) error
	SaveUserMembership(um *datamodel.UserMembership) error

	GetUserWithEmployee(id int64) (*datamodel.User, error)
	UpdateUserRole(userID, roleID int64) error
}

// RoleResolver maps role names to stored identifiers and back.
type RoleResolver interface {
	ResolveRoleID(name string) (int64, error)
	RoleName(id int64) (string, error)
}

// Service owns the membership lifecycle: it keeps user_memberships rows and
// the owning user's role mutually consistent.
type Service struct {
	repo   Repository
	roles  RoleResolver
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, roles RoleResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		roles:  roles,
		logger: logger,
		now:    time.Now,
	}
}

// Subscribe creates an active membership for a user. End date is the start
// advanced by the plan duration with end-of-month clamping. A user holding
// exactly the USER role and no employment record is promoted to MEMBER in
// the same transaction.
func (s *Service) Subscribe(dto SubscribeDTO) (*UserMembership, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("subscribe validation failed", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	var created *datamodel.UserMembership
	err := s.repo.Transaction(func(tx Repository) error {
		user, err := tx.GetUserWithEmployee(dto.UserID)
		if err != nil {
			return err
		}

		plan, err := tx.GetPlan(dto.MembershipID)
		if err != nil {
			return err
		}

		activeCount, err := tx.CountActiveForUser(dto.UserID, 0)
		if err != nil {
			return internal.NewPersistenceError(err)
		}
		if activeCount > 0 {
			return internal.ErrMembershipAlreadyActive
		}

		start := s.now()
		if dto.StartDate != nil {
			start = *dto.StartDate
		}
		end := addMonthsClamped(start, plan.DurationMonths)

		um := &datamodel.UserMembership{
			UserID:       dto.UserID,
			MembershipID: plan.ID,
			StartDate:    start,
			EndDate:      &end,
			Active:       true,
		}
		if err := tx.CreateUserMembership(um); err != nil {
			return internal.NewPersistenceError(err)
		}

		if err := s.promoteToMemberIfPlainUser(tx, user); err != nil {
			return err
		}

		um.User = *user
		um.Membership = *plan
		created = um
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user subscribed",
		"user_id", created.UserID,
		"membership_id", created.MembershipID,
		"start_date", created.StartDate,
		"end_date", created.EndDate)

	return FromDataModel(created), nil
}

// ChangePlanOrDates applies a partial update to a user membership. The end
// date is recomputed whenever the plan or start date changes, always from
// the (possibly new) plan's duration and the (possibly unchanged) start.
func (s *Service) ChangePlanOrDates(id int64, dto UpdateUserMembershipDTO) (*UserMembership, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("membership update validation failed", "error", err, "user_membership_id", id)
		return nil, err
	}

	var updated *datamodel.UserMembership
	err := s.repo.Transaction(func(tx Repository) error {
		um, err := tx.GetUserMembership(id)
		if err != nil {
			return err
		}

		if dto.MembershipID != nil {
			plan, err := tx.GetPlan(*dto.MembershipID)
			if err != nil {
				return err
			}
			um.MembershipID = plan.ID
			um.Membership = *plan
		}
		if dto.StartDate != nil {
			um.StartDate = *dto.StartDate
		}
		if dto.MembershipID != nil || dto.StartDate != nil {
			end := addMonthsClamped(um.StartDate, um.Membership.DurationMonths)
			um.EndDate = &end
		}

		wasActive := um.Active
		if dto.Active != nil {
			if *dto.Active && !wasActive {
				others, err := tx.CountActiveForUser(um.UserID, um.ID)
				if err != nil {
					return internal.NewPersistenceError(err)
				}
				if others > 0 {
					return internal.ErrMembershipAlreadyActive
				}
			}
			um.Active = *dto.Active
		}

		if err := tx.SaveUserMembership(um); err != nil {
			return internal.NewPersistenceError(err)
		}

		if dto.Active != nil && wasActive && !*dto.Active {
			if err := s.demoteToUserIfNoActiveMembership(tx, um.UserID); err != nil {
				return err
			}
		}

		updated = um
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user membership updated", "user_membership_id", updated.ID, "active", updated.Active)
	return FromDataModel(updated), nil
}

// Deactivate cancels a membership. The row survives with active=false; the
// end date is fixed to now only when it was never set. Calling it twice is
// a no-op on the end date.
func (s *Service) Deactivate(id int64) (*UserMembership, error) {
	var deactivated *datamodel.UserMembership
	err := s.repo.Transaction(func(tx Repository) error {
		um, err := tx.GetUserMembership(id)
		if err != nil {
			return err
		}

		um.Active = false
		if um.EndDate == nil {
			now := s.now()
			um.EndDate = &now
		}
		if err := tx.SaveUserMembership(um); err != nil {
			return internal.NewPersistenceError(err)
		}

		if err := s.demoteToUserIfNoActiveMembership(tx, um.UserID); err != nil {
			return err
		}

		deactivated = um
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user membership deactivated", "user_membership_id", deactivated.ID)
	return FromDataModel(deactivated), nil
}

func (s *Service) GetUserMembership(id int64) (*UserMembership, error) {
	um, err := s.repo.GetUserMembership(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(um), nil
}

func (s *Service) ListUserMemberships(userID int64) ([]*UserMembership, error) {
	var (
		ums []datamodel.UserMembership
		err error
	)
	if userID != 0 {
		ums, err = s.repo.ListUserMembershipsByUser(userID)
	} else {
		ums, err = s.repo.ListUserMemberships()
	}
	if err != nil {
		s.logger.Error("failed to list user memberships", "error", err, "user_id", userID)
		return nil, internal.NewPersistenceError(err)
	}
	return FromDataModelSlice(ums), nil
}

func (s *Service) ListPlans() ([]*Plan, error) {
	plans, err := s.repo.ListPlans()
	if err != nil {
		s.logger.Error("failed to list plans", "error", err)
		return nil, internal.NewPersistenceError(err)
	}
	return PlansFromDataModel(plans), nil
}

func (s *Service) CreatePlan(dto CreatePlanDTO) (*Plan, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("plan validation failed", "error", err)
		return nil, err
	}

	plan := &datamodel.Membership{
		Name:           dto.Name,
		DurationMonths: dto.DurationMonths,
		Price:          dto.Price,
		Description:    dto.Description,
	}
	if err := s.repo.CreatePlan(plan); err != nil {
		s.logger.Error("failed to create plan", "error", err, "name", dto.Name)
		return nil, internal.NewPersistenceError(err)
	}

	s.logger.Info("membership plan created", "plan_id", plan.ID, "name", plan.Name, "duration_months", plan.DurationMonths)
	return PlanFromDataModel(plan), nil
}

// promoteToMemberIfPlainUser promotes USER to MEMBER. Staff keep their role
// even while holding a membership, and so does anyone already MEMBER.
func (s *Service) promoteToMemberIfPlainUser(tx Repository, user *datamodel.User) error {
	if user.Employee != nil {
		return nil
	}

	current, err := s.roles.RoleName(user.RoleID)
	if err != nil {
		return err
	}
	if current != role.User {
		return nil
	}

	memberID, err := s.roles.ResolveRoleID(role.Member)
	if err != nil {
		return err
	}
	if err := tx.UpdateUserRole(user.ID, memberID); err != nil {
		return internal.NewPersistenceError(err)
	}

	s.logger.Info("user promoted to member", "user_id", user.ID)
	return nil
}

// demoteToUserIfNoActiveMembership demotes MEMBER to USER once the last
// active membership is gone. Staff roles are never touched by this path.
func (s *Service) demoteToUserIfNoActiveMembership(tx Repository, userID int64) error {
	remaining, err := tx.CountActiveForUser(userID, 0)
	if err != nil {
		return internal.NewPersistenceError(err)
	}
	if remaining > 0 {
		return nil
	}

	user, err := tx.GetUserWithEmployee(userID)
	if err != nil {
		return err
	}
	if user.Employee != nil {
		return nil
	}

	current, err := s.roles.RoleName(user.RoleID)
	if err != nil {
		return err
	}
	if current != role.Member {
		return nil
	}

	userRoleID, err := s.roles.ResolveRoleID(role.User)
	if err != nil {
		return err
	}
	if err := tx.UpdateUserRole(userID, userRoleID); err != nil {
		return internal.NewPersistenceError(err)
	}

	s.logger.Info("user demoted after membership deactivation", "user_id", userID)
	return nil
}
