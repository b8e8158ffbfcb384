package payment

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Payment struct {
	ID               int64     `json:"id"`
	UserMembershipID int64     `json:"user_membership_id"`
	Amount           float64   `json:"amount"`
	Method           string    `json:"method"`
	Date             time.Time `json:"date"`
	Reference        string    `json:"reference"`
}

func FromDataModel(dm *datamodel.Payment) *Payment {
	return &Payment{
		ID:               dm.ID,
		UserMembershipID: dm.UserMembershipID,
		Amount:           dm.Amount,
		Method:           dm.Method,
		Date:             dm.Date,
		Reference:        dm.Reference,
	}
}

func FromDataModelSlice(dms []datamodel.Payment) []*Payment {
	payments := make([]*Payment, 0, len(dms))
	for i := range dms {
		payments = append(payments, FromDataModel(&dms[i]))
	}
	return payments
}
