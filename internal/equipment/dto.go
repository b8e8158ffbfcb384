package equipment

import (
	"strings"
	"time"

	"github.com/frahmantamala/gym-management/internal"
)

var validConditions = map[string]struct{}{
	"NEW":            {},
	"GOOD":           {},
	"NEEDS_SERVICE":  {},
	"OUT_OF_SERVICE": {},
}

type CreateEquipmentDTO struct {
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Condition     string    `json:"condition"`
	PurchaseDate  time.Time `json:"purchase_date"`
	PurchasePrice *float64  `json:"purchase_price"`
}

func (d *CreateEquipmentDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(d.Category) == "" {
		return internal.NewValidationFieldError("category", "category is required", internal.ErrCodeValidationFailed)
	}
	if _, ok := validConditions[d.Condition]; !ok {
		return internal.NewValidationFieldError("condition", "condition must be one of NEW, GOOD, NEEDS_SERVICE, OUT_OF_SERVICE", internal.ErrCodeValidationFailed)
	}
	if d.PurchaseDate.IsZero() {
		return internal.NewValidationFieldError("purchase_date", "purchase_date is required", internal.ErrCodeInvalidDate)
	}
	if d.PurchasePrice != nil && *d.PurchasePrice < 0 {
		return internal.NewValidationFieldError("purchase_price", "purchase_price must not be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}

type UpdateEquipmentDTO struct {
	Name          *string    `json:"name"`
	Category      *string    `json:"category"`
	Condition     *string    `json:"condition"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price"`
}

func (d *UpdateEquipmentDTO) Validate() error {
	if d.Name == nil && d.Category == nil && d.Condition == nil &&
		d.PurchaseDate == nil && d.PurchasePrice == nil {
		return internal.NewValidationError("at least one field must be provided", internal.ErrCodeValidationFailed)
	}
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return internal.NewValidationFieldError("name", "name must not be empty", internal.ErrCodeValidationFailed)
	}
	if d.Condition != nil {
		if _, ok := validConditions[*d.Condition]; !ok {
			return internal.NewValidationFieldError("condition", "condition must be one of NEW, GOOD, NEEDS_SERVICE, OUT_OF_SERVICE", internal.ErrCodeValidationFailed)
		}
	}
	if d.PurchasePrice != nil && *d.PurchasePrice < 0 {
		return internal.NewValidationFieldError("purchase_price", "purchase_price must not be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}

type CreateMaintenanceDTO struct {
	Date        time.Time `json:"date"`
	Cost        float64   `json:"cost"`
	Description *string   `json:"description"`
}

func (d *CreateMaintenanceDTO) Validate() error {
	if d.Date.IsZero() {
		return internal.NewValidationFieldError("date", "date is required", internal.ErrCodeInvalidDate)
	}
	if d.Cost < 0 {
		return internal.NewValidationFieldError("cost", "cost must not be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}
