package payment

import (
	"time"

	"github.com/frahmantamala/gym-management/internal"
)

var validMethods = map[string]struct{}{
	"CASH":          {},
	"CARD":          {},
	"BANK_TRANSFER": {},
}

type CreatePaymentDTO struct {
	UserMembershipID int64      `json:"user_membership_id"`
	Amount           float64    `json:"amount"`
	Method           string     `json:"method"`
	Date             *time.Time `json:"date"`
}

func (d *CreatePaymentDTO) Validate() error {
	if d.UserMembershipID <= 0 {
		return internal.NewValidationFieldError("user_membership_id", "user_membership_id is required", internal.ErrCodeValidationFailed)
	}
	if d.Amount <= 0 {
		return internal.NewValidationFieldError("amount", "amount must be positive", internal.ErrCodeInvalidAmount)
	}
	if _, ok := validMethods[d.Method]; !ok {
		return internal.NewValidationFieldError("method", "method must be one of CASH, CARD, BANK_TRANSFER", internal.ErrCodeValidationFailed)
	}
	return nil
}
