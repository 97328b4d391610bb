package service

import (
	"context"
	"strings"

	"github.com/gridbits/enertrack/internal/clock"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	"github.com/gridbits/enertrack/internal/events"
	obsmetrics "github.com/gridbits/enertrack/internal/observability/metrics"
	"github.com/gridbits/enertrack/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    devicedomain.Repository
	Outbox  *events.Outbox      `optional:"true"`
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    devicedomain.Repository
	outbox  *events.Outbox
	metrics *obsmetrics.Metrics
}

func New(p Params) devicedomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("device.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		outbox:  p.Outbox,
		metrics: p.Metrics,
	}
}

func (s *Service) Register(ctx context.Context, req devicedomain.RegisterRequest) (*devicedomain.Device, error) {
	deviceID := strings.TrimSpace(req.DeviceID)
	if deviceID == "" {
		return nil, devicedomain.ErrInvalidDeviceID
	}

	deviceType := strings.TrimSpace(req.DeviceType)
	if deviceType == "" {
		return nil, devicedomain.ErrInvalidDeviceType
	}

	caller := strings.TrimSpace(req.Caller)
	if caller == "" {
		return nil, devicedomain.ErrInvalidCaller
	}

	now := s.clock.Now().UTC()
	device := &devicedomain.Device{
		DeviceID:     deviceID,
		DeviceType:   deviceType,
		Owner:        caller,
		IsActive:     true,
		RegisteredAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, device); err != nil {
			return err
		}

		if s.outbox != nil {
			payload := events.DeviceRegisteredPayload{
				DeviceID:   deviceID,
				DeviceType: deviceType,
				Owner:      caller,
			}
			return s.outbox.PublishTx(ctx, tx, events.Event{
				DeviceID:  deviceID,
				Type:      events.EventDeviceRegistered,
				Payload:   payload.ToMap(),
				DedupeKey: "device_registered:" + deviceID,
			})
		}
		return nil
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, devicedomain.ErrAlreadyRegistered
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DevicesRegistered.Inc()
	}
	s.log.Info("device registered",
		zap.String("device_id", deviceID),
		zap.String("device_type", deviceType),
		zap.String("owner", caller),
	)

	return device, nil
}

func (s *Service) Get(ctx context.Context, deviceID string) (*devicedomain.Device, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, devicedomain.ErrInvalidDeviceID
	}

	device, err := s.repo.FindByID(ctx, s.db, deviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, devicedomain.ErrNotFound
	}
	return device, nil
}

func (s *Service) ListByOwner(ctx context.Context, owner string) ([]devicedomain.Device, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, devicedomain.ErrInvalidCaller
	}
	return s.repo.ListByOwner(ctx, s.db, owner)
}

func (s *Service) AssertOwner(ctx context.Context, deviceID, caller string) error {
	device, err := s.Get(ctx, deviceID)
	if err != nil {
		return err
	}
	if device.Owner != strings.TrimSpace(caller) {
		return devicedomain.ErrNotOwner
	}
	return nil
}
