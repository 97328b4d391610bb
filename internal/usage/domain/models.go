// Package domain contains the append-only energy usage ledger model.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// EnergyRecord stores a single usage reading. Records are append-only: never
// mutated, never deleted, and same-day duplicates are retained individually.
type EnergyRecord struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	DeviceID    string       `json:"device_id" gorm:"type:text;not null;index:ix_energy_records_device_day,priority:1"`
	DayBucket   int64        `json:"day_bucket" gorm:"not null;index:ix_energy_records_device_day,priority:2"`
	EnergyUsage int64        `json:"energy_usage" gorm:"not null"`
	DataSource  string       `json:"data_source" gorm:"type:text;not null"`
	Metadata    string       `json:"metadata" gorm:"type:text"` // opaque, never parsed
	RecordedAt  time.Time    `json:"recorded_at" gorm:"not null"`
}

// TableName sets the database table name.
func (EnergyRecord) TableName() string { return "energy_records" }
