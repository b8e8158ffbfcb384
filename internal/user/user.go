package user

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

// User is the API representation of an account. The password hash never
// leaves the persistence layer.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Role         string     `json:"role"`
	PhoneNumbers []string   `json:"phone_numbers"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Memberships []MembershipSummary `json:"memberships,omitempty"`
	Employee    *EmployeeSummary    `json:"employee,omitempty"`
}

type MembershipSummary struct {
	ID        int64      `json:"id"`
	PlanID    int64      `json:"plan_id"`
	PlanName  string     `json:"plan_name,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Active    bool       `json:"active"`
}

type EmployeeSummary struct {
	ID       int64     `json:"id"`
	HireDate time.Time `json:"hire_date"`
	Salary   float64   `json:"salary"`
}

func FromDataModel(dm *datamodel.User) *User {
	u := &User{
		ID:           dm.ID,
		Email:        dm.Email,
		FirstName:    dm.FirstName,
		LastName:     dm.LastName,
		BirthDate:    dm.BirthDate,
		PhoneNumbers: make([]string, 0, len(dm.PhoneNumbers)),
		CreatedAt:    dm.CreatedAt,
		UpdatedAt:    dm.UpdatedAt,
	}
	if dm.Role.ID != 0 {
		u.Role = dm.Role.Name
	}
	for _, p := range dm.PhoneNumbers {
		u.PhoneNumbers = append(u.PhoneNumbers, p.Number)
	}
	for _, m := range dm.Memberships {
		summary := MembershipSummary{
			ID:        m.ID,
			PlanID:    m.MembershipID,
			StartDate: m.StartDate,
			EndDate:   m.EndDate,
			Active:    m.Active,
		}
		if m.Membership.ID != 0 {
			summary.PlanName = m.Membership.Name
		}
		u.Memberships = append(u.Memberships, summary)
	}
	if dm.Employee != nil {
		u.Employee = &EmployeeSummary{
			ID:       dm.Employee.ID,
			HireDate: dm.Employee.HireDate,
			Salary:   dm.Employee.Salary,
		}
	}
	return u
}

func FromDataModelSlice(dms []datamodel.User) []*User {
	users := make([]*User, 0, len(dms))
	for i := range dms {
		users = append(users, FromDataModel(&dms[i]))
	}
	return users
}
