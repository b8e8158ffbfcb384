package membership

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

// Plan is a named subscription tier with a fixed duration and price.
type Plan struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	DurationMonths int     `json:"duration_months"`
	Price          float64 `json:"price"`
	Description    string  `json:"description,omitempty"`
}

// UserMembership is a single subscription period binding a user to a plan.
type UserMembership struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	MembershipID int64           `json:"membership_id"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	Active       bool            `json:"active"`
	User         *UserSummary    `json:"user,omitempty"`
	Plan         *Plan           `json:"membership,omitempty"`
	Payments     []PaymentRecord `json:"payments,omitempty"`
}

// UserSummary is the membership view of a user; passwords never leave the
// datamodel layer.
type UserSummary struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PaymentRecord struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Date      time.Time `json:"date"`
	Reference string    `json:"reference"`
}

// addMonthsClamped advances t by the given number of calendar months,
// clamping the day to the last day of the target month. Jan 31 + 1 month
// lands on Feb 29/28 rather than rolling into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func PlanFromDataModel(m *datamodel.Membership) *Plan {
	return &Plan{
		ID:             m.ID,
		Name:           m.Name,
		DurationMonths: m.DurationMonths,
		Price:          m.Price,
		Description:    m.Description,
	}
}

func PlanToDataModel(p *Plan) *datamodel.Membership {
	return &datamodel.Membership{
		ID:             p.ID,
		Name:           p.Name,
		DurationMonths: p.DurationMonths,
		Price:          p.Price,
		Description:    p.Description,
	}
}

func PlansFromDataModel(plans []datamodel.Membership) []*Plan {
	result := make([]*Plan, len(plans))
	for i := range plans {
		result[i] = PlanFromDataModel(&plans[i])
	}
	return result
}

func FromDataModel(um *datamodel.UserMembership) *UserMembership {
	out := &UserMembership{
		ID:           um.ID,
		UserID:       um.UserID,
		MembershipID: um.MembershipID,
		StartDate:    um.StartDate,
		EndDate:      um.EndDate,
		Active:       um.Active,
	}
	if um.User.ID != 0 {
		out.User = &UserSummary{
			ID:        um.User.ID,
			Email:     um.User.Email,
			FirstName: um.User.FirstName,
			LastName:  um.User.LastName,
		}
	}
	if um.Membership.ID != 0 {
		out.Plan = PlanFromDataModel(&um.Membership)
	}
	for _, p := range um.Payments {
		out.Payments = append(out.Payments, PaymentRecord{
			ID:        p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			Date:      p.Date,
			Reference: p.Reference,
		})
	}
	return out
}

func FromDataModelSlice(ums []datamodel.UserMembership) []*UserMembership {
	result := make([]*UserMembership, len(ums))
	for i := range ums {
		result[i] = FromDataModel(&ums[i])
	}
	return result
}
