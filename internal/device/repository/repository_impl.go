package repository

import (
	"context"

	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() devicedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, d *devicedomain.Device) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO devices (device_id, device_type, owner, is_active, registered_at)
		 VALUES (?, ?, ?, ?, ?)`,
		d.DeviceID,
		d.DeviceType,
		d.Owner,
		d.IsActive,
		d.RegisteredAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, deviceID string) (*devicedomain.Device, error) {
	var device devicedomain.Device
	err := db.WithContext(ctx).Raw(
		`SELECT device_id, device_type, owner, is_active, registered_at
		 FROM devices WHERE device_id = ?`,
		deviceID,
	).Scan(&device).Error
	if err != nil {
		return nil, err
	}
	if device.DeviceID == "" {
		return nil, nil
	}
	return &device, nil
}

func (r *repo) ListByOwner(ctx context.Context, db *gorm.DB, owner string) ([]devicedomain.Device, error) {
	var devices []devicedomain.Device
	err := db.WithContext(ctx).Raw(
		`SELECT device_id, device_type, owner, is_active, registered_at
		 FROM devices WHERE owner = ? ORDER BY registered_at ASC`,
		owner,
	).Scan(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}
