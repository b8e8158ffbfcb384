package membership

import (
	"time"

	"github.com/frahmantamala/gym-management/internal"
)

// SubscribeDTO is the request payload for creating a user membership.
type SubscribeDTO struct {
	UserID       int64      `json:"user_id"`
	MembershipID int64      `json:"membership_id"`
	StartDate    *time.Time `json:"start_date,omitempty"`
}

func (dto SubscribeDTO) Validate() error {
	if dto.UserID == 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.MembershipID == 0 {
		return internal.NewValidationFieldError("membership_id", "membership_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateUserMembershipDTO is a partial update; nil fields are left unchanged.
type UpdateUserMembershipDTO struct {
	MembershipID *int64     `json:"membership_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	Active       *bool      `json:"active,omitempty"`
}

func (dto UpdateUserMembershipDTO) Validate() error {
	if dto.MembershipID == nil && dto.StartDate == nil && dto.Active == nil {
		return internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)
	}
	if dto.MembershipID != nil && *dto.MembershipID == 0 {
		return internal.NewValidationFieldError("membership_id", "membership_id must be a valid plan id", internal.ErrCodeValidationFailed)
	}
	return nil
}

// CreatePlanDTO is the request payload for creating a membership plan.
type CreatePlanDTO struct {
	Name           string  `json:"name"`
	DurationMonths int     `json:"duration_months"`
	Price          float64 `json:"price"`
	Description    string  `json:"description,omitempty"`
}

func (dto CreatePlanDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.DurationMonths <= 0 {
		return internal.NewValidationFieldError("duration_months", "duration_months must be positive", internal.ErrCodeInvalidDuration)
	}
	if dto.Price < 0 {
		return internal.NewValidationFieldError("price", "price must not be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}
