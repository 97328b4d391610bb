package repository

import (
	"context"

	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() aggregatedomain.Repository {
	return &repo{}
}

func (r *repo) Apply(ctx context.Context, db *gorm.DB, deviceID string, monthBucket, energyUsage int64) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO monthly_aggregates (device_id, month_bucket, total_energy_usage, days_recorded)
		 VALUES (?, ?, ?, 1)
		 ON CONFLICT (device_id, month_bucket) DO UPDATE
		 SET total_energy_usage = monthly_aggregates.total_energy_usage + excluded.total_energy_usage,
		     days_recorded = monthly_aggregates.days_recorded + 1`,
		deviceID,
		monthBucket,
		energyUsage,
	).Error
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, deviceID string, monthBucket int64) (*aggregatedomain.MonthlyAggregate, error) {
	var aggregate aggregatedomain.MonthlyAggregate
	err := db.WithContext(ctx).Raw(
		`SELECT device_id, month_bucket, total_energy_usage, days_recorded
		 FROM monthly_aggregates WHERE device_id = ? AND month_bucket = ?`,
		deviceID,
		monthBucket,
	).Scan(&aggregate).Error
	if err != nil {
		return nil, err
	}
	if aggregate.DeviceID == "" {
		return nil, nil
	}
	return &aggregate, nil
}
