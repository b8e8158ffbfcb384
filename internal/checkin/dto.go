package checkin

import (
	"time"

	"github.com/frahmantamala/gym-management/internal"
)

type CreateCheckInDTO struct {
	UserID      int64      `json:"user_id"`
	CheckInTime *time.Time `json:"check_in_time"`
}

func (d *CreateCheckInDTO) Validate() error {
	if d.UserID <= 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
