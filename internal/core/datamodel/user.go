package datamodel

import "time"

// Role is immutable reference data seeded by the seed command.
type Role struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "roles"
}

type User struct {
	ID           int64      `gorm:"primaryKey"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FirstName    string     `gorm:"column:first_name;not null"`
	LastName     string     `gorm:"column:last_name;not null"`
	BirthDate    *time.Time `gorm:"column:birth_date;type:date"`
	RoleID       int64      `gorm:"column:role_id;not null"`
	Role         Role       `gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`

	PhoneNumbers []PhoneNumber    `gorm:"foreignKey:UserID"`
	Memberships  []UserMembership `gorm:"foreignKey:UserID"`
	CheckIns     []CheckIn        `gorm:"foreignKey:UserID"`
	Employee     *Employee        `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

type PhoneNumber struct {
	ID     int64  `gorm:"primaryKey"`
	UserID int64  `gorm:"column:user_id;not null;index"`
	Number string `gorm:"column:number;not null"`
}

func (PhoneNumber) TableName() string {
	return "phone_numbers"
}
