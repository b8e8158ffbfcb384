package datamodel

import "time"

type Class struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	StartTime   time.Time `gorm:"column:start_time;not null"`
	DurationMin int       `gorm:"column:duration_min;not null"`
	TrainerID   *int64    `gorm:"column:trainer_id"`

	Trainer *Trainer `gorm:"foreignKey:TrainerID"`
}

func (Class) TableName() string {
	return "classes"
}

type CheckIn struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	CheckInTime time.Time `gorm:"column:check_in_time;not null;default:now()"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

type Equipment struct {
	ID            int64      `gorm:"primaryKey"`
	Name          string     `gorm:"column:name;not null"`
	Category      string     `gorm:"column:category;not null"`
	Condition     string     `gorm:"column:condition;not null"`
	PurchaseDate  time.Time  `gorm:"column:purchase_date;type:date;not null"`
	PurchasePrice *float64   `gorm:"column:purchase_price"`

	// No ON DELETE CASCADE on maintenance; equipment deletion removes
	// dependent rows explicitly inside one transaction.
	Maintenance []Maintenance `gorm:"foreignKey:EquipmentID"`
}

func (Equipment) TableName() string {
	return "equipment"
}

type Maintenance struct {
	ID          int64     `gorm:"primaryKey"`
	EquipmentID int64     `gorm:"column:equipment_id;not null;index"`
	Date        time.Time `gorm:"column:date;type:date;not null"`
	Cost        float64   `gorm:"column:cost;not null"`
	Description *string   `gorm:"column:description"`
}

func (Maintenance) TableName() string {
	return "maintenance"
}
