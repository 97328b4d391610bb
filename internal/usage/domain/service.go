package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Record appends a reading for an owned device and applies it to the
	// monthly aggregate in the same transaction. Ownership errors from the
	// device registry pass through unchanged.
	Record(ctx context.Context, req RecordRequest) (*EnergyRecord, error)
	// ListRange returns the device's records whose day bucket falls in
	// [DayBucket(from), DayBucket(to)] inclusive, ascending by day bucket and
	// insertion order within a day. An empty range is not an error; an
	// unregistered device is.
	ListRange(ctx context.Context, deviceID string, from, to int64) ([]EnergyRecord, error)
}

type RecordRequest struct {
	DeviceID    string `json:"device_id"`
	EnergyUsage int64  `json:"energy_usage"`
	DataSource  string `json:"data_source"`
	Metadata    string `json:"metadata"`
	Caller      string `json:"-"`
}

var (
	ErrInvalidAmount = errors.New("invalid_amount")
)
