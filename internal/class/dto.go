package class

import (
	"strings"
	"time"

	"github.com/frahmantamala/gym-management/internal"
)

type CreateClassDTO struct {
	Name        string    `json:"name"`
	StartTime   time.Time `json:"start_time"`
	DurationMin int       `json:"duration_min"`
	TrainerID   *int64    `json:"trainer_id"`
}

func (d *CreateClassDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if d.StartTime.IsZero() {
		return internal.NewValidationFieldError("start_time", "start_time is required", internal.ErrCodeInvalidDate)
	}
	if d.DurationMin <= 0 {
		return internal.NewValidationFieldError("duration_min", "duration_min must be positive", internal.ErrCodeInvalidDuration)
	}
	return nil
}

type UpdateClassDTO struct {
	Name        *string    `json:"name"`
	StartTime   *time.Time `json:"start_time"`
	DurationMin *int       `json:"duration_min"`
	TrainerID   *int64     `json:"trainer_id"`
}

func (d *UpdateClassDTO) Validate() error {
	if d.Name == nil && d.StartTime == nil && d.DurationMin == nil && d.TrainerID == nil {
		return internal.NewValidationError("at least one field must be provided", internal.ErrCodeValidationFailed)
	}
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return internal.NewValidationFieldError("name", "name must not be empty", internal.ErrCodeValidationFailed)
	}
	if d.DurationMin != nil && *d.DurationMin <= 0 {
		return internal.NewValidationFieldError("duration_min", "duration_min must be positive", internal.ErrCodeInvalidDuration)
	}
	return nil
}
