package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *EnergyRecord) error
	ListRange(ctx context.Context, db *gorm.DB, deviceID string, fromBucket, toBucket int64) ([]EnergyRecord, error)
}
