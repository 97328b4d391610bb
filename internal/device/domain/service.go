package domain

import (
	"context"
	"errors"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Device, error)
	Get(ctx context.Context, deviceID string) (*Device, error)
	ListByOwner(ctx context.Context, owner string) ([]Device, error)
	// AssertOwner fails with ErrNotFound when the device is unregistered and
	// ErrNotOwner when caller is not the registering account.
	AssertOwner(ctx context.Context, deviceID, caller string) error
}

type RegisterRequest struct {
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
	Caller     string `json:"-"`
}

var (
	ErrAlreadyRegistered = errors.New("already_registered")
	ErrNotFound          = errors.New("not_found")
	ErrNotOwner          = errors.New("not_owner")
	ErrInvalidDeviceID   = errors.New("invalid_device_id")
	ErrInvalidDeviceType = errors.New("invalid_device_type")
	ErrInvalidCaller     = errors.New("invalid_caller")
)
