package employee

import (
	"time"

	"github.com/frahmantamala/gym-management/internal"
)

// TrainerFieldsDTO carries the trainer extension on hire or update. On
// create both specialization and experience_years are required together.
type TrainerFieldsDTO struct {
	Specialization  *string `json:"specialization,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	SupervisorID    *int64  `json:"supervisor_id,omitempty"`
}

type ReceptionistFieldsDTO struct {
	ShiftHours *string `json:"shift_hours,omitempty"`
}

// HireDTO is the request payload for creating an employee. Trainer fields
// win over receptionist fields when determining the new role.
type HireDTO struct {
	UserID       int64                  `json:"user_id"`
	HireDate     time.Time              `json:"hire_date"`
	Salary       float64                `json:"salary"`
	Trainer      *TrainerFieldsDTO      `json:"trainer,omitempty"`
	Receptionist *ReceptionistFieldsDTO `json:"receptionist,omitempty"`
}

func (dto HireDTO) Validate() error {
	if dto.UserID == 0 {
		return internal.NewValidationFieldError("user_id", "user_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.HireDate.IsZero() {
		return internal.NewValidationFieldError("hire_date", "hire_date is required", internal.ErrCodeInvalidDate)
	}
	if dto.Salary < 0 {
		return internal.NewValidationFieldError("salary", "salary must not be negative", internal.ErrCodeInvalidAmount)
	}
	if dto.Trainer != nil {
		if err := validateTrainerCreate(dto.Trainer); err != nil {
			return err
		}
	}
	if dto.Receptionist != nil {
		if dto.Receptionist.ShiftHours == nil || *dto.Receptionist.ShiftHours == "" {
			return internal.NewValidationFieldError("receptionist.shift_hours", "shift_hours is required", internal.ErrCodeValidationFailed)
		}
	}
	return nil
}

// UpdateEmployeeDTO is a partial update. Sub-role fields create the
// trainer/receptionist record when absent and patch it when present.
type UpdateEmployeeDTO struct {
	HireDate     *time.Time             `json:"hire_date,omitempty"`
	Salary       *float64               `json:"salary,omitempty"`
	Trainer      *TrainerFieldsDTO      `json:"trainer,omitempty"`
	Receptionist *ReceptionistFieldsDTO `json:"receptionist,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	if dto.HireDate == nil && dto.Salary == nil && dto.Trainer == nil && dto.Receptionist == nil {
		return internal.NewValidationError("no fields to update", internal.ErrCodeValidationFailed)
	}
	if dto.Salary != nil && *dto.Salary < 0 {
		return internal.NewValidationFieldError("salary", "salary must not be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}

func validateTrainerCreate(t *TrainerFieldsDTO) error {
	if t.Specialization == nil || *t.Specialization == "" {
		return internal.NewValidationFieldError("trainer.specialization", "specialization is required", internal.ErrCodeValidationFailed)
	}
	if t.ExperienceYears == nil {
		return internal.NewValidationFieldError("trainer.experience_years", "experience_years is required alongside specialization", internal.ErrCodeValidationFailed)
	}
	if *t.ExperienceYears < 0 {
		return internal.NewValidationFieldError("trainer.experience_years", "experience_years must not be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}
