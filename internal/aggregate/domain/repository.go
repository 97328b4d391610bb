package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Apply adds energyUsage to the (deviceID, monthBucket) aggregate,
	// creating the row lazily on first use and incrementing the record count.
	// It is only called from the usage ledger's insert transaction so the
	// aggregate can never drift from the ledger.
	Apply(ctx context.Context, db *gorm.DB, deviceID string, monthBucket, energyUsage int64) error
	Find(ctx context.Context, db *gorm.DB, deviceID string, monthBucket int64) (*MonthlyAggregate, error)
}
