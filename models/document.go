package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document stores one whole collection under a fixed key.
type Document struct {
	Key       string         `gorm:"primaryKey;type:varchar(64)"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}
