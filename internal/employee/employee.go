package employee

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

// Employee is the staff record, one-to-one with a user. Trainer and
// Receptionist are optional extensions created and updated through the
// employee operations.
type Employee struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"user_id"`
	HireDate     time.Time     `json:"hire_date"`
	Salary       float64       `json:"salary"`
	User         *UserSummary  `json:"user,omitempty"`
	Trainer      *Trainer      `json:"trainer,omitempty"`
	Receptionist *Receptionist `json:"receptionist,omitempty"`
}

type UserSummary struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Trainer struct {
	ID              int64         `json:"id"`
	EmployeeID      int64         `json:"employee_id"`
	Specialization  string        `json:"specialization"`
	ExperienceYears int           `json:"experience_years"`
	SupervisorID    *int64        `json:"supervisor_id,omitempty"`
	Supervisor      *Trainer      `json:"supervisor,omitempty"`
	Subordinates    []Trainer     `json:"subordinates,omitempty"`
	Classes         []ClassRecord `json:"classes,omitempty"`
}

type ClassRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"start_time"`
	DurationMin int       `json:"duration_min"`
}

type Receptionist struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	ShiftHours string `json:"shift_hours"`
}

func FromDataModel(e *datamodel.Employee) *Employee {
	out := &Employee{
		ID:       e.ID,
		UserID:   e.UserID,
		HireDate: e.HireDate,
		Salary:   e.Salary,
	}
	if e.User.ID != 0 {
		out.User = &UserSummary{
			ID:        e.User.ID,
			Email:     e.User.Email,
			FirstName: e.User.FirstName,
			LastName:  e.User.LastName,
		}
	}
	if e.Trainer != nil {
		out.Trainer = trainerFromDataModel(e.Trainer)
	}
	if e.Receptionist != nil {
		out.Receptionist = &Receptionist{
			ID:         e.Receptionist.ID,
			EmployeeID: e.Receptionist.EmployeeID,
			ShiftHours: e.Receptionist.ShiftHours,
		}
	}
	return out
}

func FromDataModelSlice(employees []datamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i := range employees {
		result[i] = FromDataModel(&employees[i])
	}
	return result
}

func trainerFromDataModel(t *datamodel.Trainer) *Trainer {
	out := &Trainer{
		ID:              t.ID,
		EmployeeID:      t.EmployeeID,
		Specialization:  t.Specialization,
		ExperienceYears: t.ExperienceYears,
		SupervisorID:    t.SupervisorID,
	}
	if t.Supervisor != nil {
		out.Supervisor = &Trainer{
			ID:              t.Supervisor.ID,
			EmployeeID:      t.Supervisor.EmployeeID,
			Specialization:  t.Supervisor.Specialization,
			ExperienceYears: t.Supervisor.ExperienceYears,
			SupervisorID:    t.Supervisor.SupervisorID,
		}
	}
	for _, sub := range t.Subordinates {
		out.Subordinates = append(out.Subordinates, Trainer{
			ID:              sub.ID,
			EmployeeID:      sub.EmployeeID,
			Specialization:  sub.Specialization,
			ExperienceYears: sub.ExperienceYears,
			SupervisorID:    sub.SupervisorID,
		})
	}
	for _, c := range t.Classes {
		out.Classes = append(out.Classes, ClassRecord{
			ID:          c.ID,
			Name:        c.Name,
			StartTime:   c.StartTime,
			DurationMin: c.DurationMin,
		})
	}
	return out
}

func TrainersFromDataModel(trainers []datamodel.Trainer) []*Trainer {
	result := make([]*Trainer, len(trainers))
	for i := range trainers {
		result[i] = trainerFromDataModel(&trainers[i])
	}
	return result
}

func ReceptionistsFromDataModel(receptionists []datamodel.Receptionist) []*Receptionist {
	result := make([]*Receptionist, len(receptionists))
	for i := range receptionists {
		result[i] = &Receptionist{
			ID:         receptionists[i].ID,
			EmployeeID: receptionists[i].EmployeeID,
			ShiftHours: receptionists[i].ShiftHours,
		}
	}
	return result
}
