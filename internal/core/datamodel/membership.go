package datamodel

import "time"

// Membership is a subscription plan. The same plan name may appear with
// different durations (e.g. Classic at 1 and 12 months).
type Membership struct {
	ID             int64   `gorm:"primaryKey"`
	Name           string  `gorm:"column:name;not null;index"`
	DurationMonths int     `gorm:"column:duration_months;not null"`
	Price          float64 `gorm:"column:price;not null"`
	Description    string  `gorm:"column:description"`
}

func (Membership) TableName() string {
	return "memberships"
}

// UserMembership is one subscription period of a user. Cancelling never
// deletes the row; it flips Active and fixes EndDate so history survives.
// A partial unique index on (user_id) WHERE active guards the at-most-one
// active row invariant against concurrent writers.
type UserMembership struct {
	ID           int64      `gorm:"primaryKey"`
	UserID       int64      `gorm:"column:user_id;not null;index"`
	MembershipID int64      `gorm:"column:membership_id;not null"`
	StartDate    time.Time  `gorm:"column:start_date;not null"`
	EndDate      *time.Time `gorm:"column:end_date"`
	Active       bool       `gorm:"column:active;not null;default:false"`

	User       User       `gorm:"foreignKey:UserID"`
	Membership Membership `gorm:"foreignKey:MembershipID"`
	Payments   []Payment  `gorm:"foreignKey:UserMembershipID"`
}

func (UserMembership) TableName() string {
	return "user_memberships"
}

type Payment struct {
	ID               int64     `gorm:"primaryKey"`
	UserMembershipID int64     `gorm:"column:user_membership_id;not null;index"`
	Amount           float64   `gorm:"column:amount;not null"`
	Method           string    `gorm:"column:method;not null"`
	Date             time.Time `gorm:"column:date;not null"`
	Reference        string    `gorm:"column:reference;uniqueIndex;not null"`
}

func (Payment) TableName() string {
	return "payments"
}
