package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, device *Device) error
	FindByID(ctx context.Context, db *gorm.DB, deviceID string) (*Device, error)
	ListByOwner(ctx context.Context, db *gorm.DB, owner string) ([]Device, error)
}
