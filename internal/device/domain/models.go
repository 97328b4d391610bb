// Package domain contains the device registry model and contracts.
package domain

import "time"

// Device is a registered energy device. Rows are written exactly once at
// registration and never mutated; device ids can never be reused, even for a
// conceptually inactive device.
type Device struct {
	DeviceID     string    `json:"device_id" gorm:"primaryKey;type:text"`
	DeviceType   string    `json:"device_type" gorm:"type:text;not null"`
	Owner        string    `json:"owner" gorm:"type:text;not null;index"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	RegisteredAt time.Time `json:"registered_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Device) TableName() string { return "devices" }
