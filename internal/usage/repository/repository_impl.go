package repository

import (
	"context"

	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() usagedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *usagedomain.EnergyRecord) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO energy_records (id, device_id, day_bucket, energy_usage, data_source, metadata, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.DeviceID,
		record.DayBucket,
		record.EnergyUsage,
		record.DataSource,
		record.Metadata,
		record.RecordedAt,
	).Error
}

func (r *repo) ListRange(ctx context.Context, db *gorm.DB, deviceID string, fromBucket, toBucket int64) ([]usagedomain.EnergyRecord, error) {
	var records []usagedomain.EnergyRecord
	// Snowflake ids are monotonic per node, so ordering by id within a day
	// bucket preserves insertion order.
	err := db.WithContext(ctx).Raw(
		`SELECT id, device_id, day_bucket, energy_usage, data_source, metadata, recorded_at
		 FROM energy_records
		 WHERE device_id = ? AND day_bucket >= ? AND day_bucket <= ?
		 ORDER BY day_bucket ASC, id ASC`,
		deviceID,
		fromBucket,
		toBucket,
	).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
