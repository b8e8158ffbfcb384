package datamodel

import "time"

// Employee is one-to-one with User. Terminating an employee hard-deletes
// this row together with its trainer/receptionist extension.
type Employee struct {
	ID       int64     `gorm:"primaryKey"`
	UserID   int64     `gorm:"column:user_id;uniqueIndex;not null"`
	HireDate time.Time `gorm:"column:hire_date;type:date;not null"`
	Salary   float64   `gorm:"column:salary;not null"`

	User         User          `gorm:"foreignKey:UserID"`
	Trainer      *Trainer      `gorm:"foreignKey:EmployeeID"`
	Receptionist *Receptionist `gorm:"foreignKey:EmployeeID"`
}

func (Employee) TableName() string {
	return "employees"
}

// Trainer may reference another trainer as supervisor. The edge is a plain
// back-reference resolved by query; no cycle prevention is enforced.
type Trainer struct {
	ID              int64  `gorm:"primaryKey"`
	EmployeeID      int64  `gorm:"column:employee_id;uniqueIndex;not null"`
	Specialization  string `gorm:"column:specialization;not null"`
	ExperienceYears int    `gorm:"column:experience_years;not null"`
	SupervisorID    *int64 `gorm:"column:supervisor_id"`

	Supervisor   *Trainer  `gorm:"foreignKey:SupervisorID"`
	Subordinates []Trainer `gorm:"foreignKey:SupervisorID"`
	Classes      []Class   `gorm:"foreignKey:TrainerID"`
}

func (Trainer) TableName() string {
	return "trainers"
}

type Receptionist struct {
	ID         int64  `gorm:"primaryKey"`
	EmployeeID int64  `gorm:"column:employee_id;uniqueIndex;not null"`
	ShiftHours string `gorm:"column:shift_hours;not null"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
