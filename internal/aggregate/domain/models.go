// Package domain contains the derived per-device monthly totals.
package domain

// MonthlyAggregate is an incrementally maintained summary over all ledger
// records sharing a device and 30-day month bucket. DaysRecorded counts
// contributing records, not distinct calendar days: a day with two readings
// contributes two.
type MonthlyAggregate struct {
	DeviceID         string `json:"device_id" gorm:"primaryKey;type:text"`
	MonthBucket      int64  `json:"month_bucket" gorm:"primaryKey;autoIncrement:false"`
	TotalEnergyUsage int64  `json:"total_energy_usage" gorm:"not null;default:0"`
	DaysRecorded     int64  `json:"days_recorded" gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (MonthlyAggregate) TableName() string { return "monthly_aggregates" }
