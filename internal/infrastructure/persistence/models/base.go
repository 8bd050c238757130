package models

import (
	"time"
)

// BaseModel provides common persistence fields for integer-keyed tables.
type BaseModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
