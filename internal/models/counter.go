package models

import "time"

// Counter is a named, persisted integer shared by every client
type Counter struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Value     int64     `json:"counter" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"lastUpdated"`
}

// TableName pins the table name
func (Counter) TableName() string {
	return "counters"
}
