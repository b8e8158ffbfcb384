package user

import (
	"strings"
	"time"

	"github.com/frahmantamala/gym-management/internal"
	"github.com/frahmantamala/gym-management/internal/role"
)

type RegisterDTO struct {
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	BirthDate    *time.Time `json:"birth_date"`
	PhoneNumbers []string   `json:"phone_numbers"`
}

func (d *RegisterDTO) Validate() error {
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return internal.NewValidationFieldError("email", "valid email is required", internal.ErrCodeValidationFailed)
	}
	if len(d.Password) < 8 {
		return internal.NewValidationFieldError("password", "password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(d.FirstName) == "" {
		return internal.NewValidationFieldError("first_name", "first_name is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(d.LastName) == "" {
		return internal.NewValidationFieldError("last_name", "last_name is required", internal.ErrCodeValidationFailed)
	}
	for _, number := range d.PhoneNumbers {
		if strings.TrimSpace(number) == "" {
			return internal.NewValidationFieldError("phone_numbers", "phone numbers must not be empty", internal.ErrCodeValidationFailed)
		}
	}
	return nil
}

// UpdateUserDTO is a partial update. A non-nil PhoneNumbers replaces the
// stored set wholesale.
type UpdateUserDTO struct {
	Email        *string    `json:"email"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	BirthDate    *time.Time `json:"birth_date"`
	Role         *string    `json:"role"`
	PhoneNumbers *[]string  `json:"phone_numbers"`
}

func (d *UpdateUserDTO) Validate() error {
	if d.Email == nil && d.FirstName == nil && d.LastName == nil &&
		d.BirthDate == nil && d.Role == nil && d.PhoneNumbers == nil {
		return internal.NewValidationError("at least one field must be provided", internal.ErrCodeValidationFailed)
	}
	if d.Email != nil {
		normalized := strings.TrimSpace(strings.ToLower(*d.Email))
		if normalized == "" || !strings.Contains(normalized, "@") {
			return internal.NewValidationFieldError("email", "valid email is required", internal.ErrCodeValidationFailed)
		}
		d.Email = &normalized
	}
	if d.FirstName != nil && strings.TrimSpace(*d.FirstName) == "" {
		return internal.NewValidationFieldError("first_name", "first_name must not be empty", internal.ErrCodeValidationFailed)
	}
	if d.LastName != nil && strings.TrimSpace(*d.LastName) == "" {
		return internal.NewValidationFieldError("last_name", "last_name must not be empty", internal.ErrCodeValidationFailed)
	}
	if d.Role != nil && !role.IsValidName(*d.Role) {
		return internal.NewValidationFieldError("role", "unknown role", internal.ErrCodeInvalidRole)
	}
	if d.PhoneNumbers != nil {
		for _, number := range *d.PhoneNumbers {
			if strings.TrimSpace(number) == "" {
				return internal.NewValidationFieldError("phone_numbers", "phone numbers must not be empty", internal.ErrCodeValidationFailed)
			}
		}
	}
	return nil
}
