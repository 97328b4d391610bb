package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"github.com/gridbits/enertrack/internal/clock"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	"github.com/gridbits/enertrack/internal/events"
	obsmetrics "github.com/gridbits/enertrack/internal/observability/metrics"
	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      usagedomain.Repository
	Devices   devicedomain.Service
	Aggregate aggregatedomain.Repository
	Outbox    *events.Outbox      `optional:"true"`
	Metrics   *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      usagedomain.Repository
	devices   devicedomain.Service
	aggregate aggregatedomain.Repository
	outbox    *events.Outbox
	metrics   *obsmetrics.Metrics
}

func New(p Params) usagedomain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("usage.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		devices:   p.Devices,
		aggregate: p.Aggregate,
		outbox:    p.Outbox,
		metrics:   p.Metrics,
	}
}

func (s *Service) Record(ctx context.Context, req usagedomain.RecordRequest) (*usagedomain.EnergyRecord, error) {
	deviceID := strings.TrimSpace(req.DeviceID)
	caller := strings.TrimSpace(req.Caller)

	if err := s.devices.AssertOwner(ctx, deviceID, caller); err != nil {
		return nil, err
	}

	if req.EnergyUsage < 0 {
		s.reject("invalid_amount")
		return nil, usagedomain.ErrInvalidAmount
	}

	// Capture the clock once; the day bucket, the aggregate key and the
	// recorded-at timestamp must all come from the same instant.
	now := s.clock.Now().UTC()
	dayBucket := clock.DayBucket(now.Unix())
	monthBucket := clock.MonthBucket(dayBucket)

	record := &usagedomain.EnergyRecord{
		ID:          s.genID.Generate(),
		DeviceID:    deviceID,
		DayBucket:   dayBucket,
		EnergyUsage: req.EnergyUsage,
		DataSource:  strings.TrimSpace(req.DataSource),
		Metadata:    req.Metadata,
		RecordedAt:  now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, record); err != nil {
			return err
		}

		// The ledger insert and the aggregate update commit as one unit;
		// no reader ever sees a record without its aggregate contribution.
		if err := s.aggregate.Apply(ctx, tx, deviceID, monthBucket, record.EnergyUsage); err != nil {
			return err
		}

		if s.outbox != nil {
			payload := events.UsageRecordedPayload{
				RecordID:   record.ID.String(),
				DeviceID:   deviceID,
				DayBucket:  dayBucket,
				DataSource: record.DataSource,
			}
			return s.outbox.PublishTx(ctx, tx, events.Event{
				DeviceID:  deviceID,
				Type:      events.EventUsageRecorded,
				Payload:   payload.ToMap(),
				DedupeKey: "usage_recorded:" + record.ID.String(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ReadingsRecorded.WithLabelValues(record.DataSource).Inc()
	}
	s.log.Info("usage recorded",
		zap.String("device_id", deviceID),
		zap.String("record_id", record.ID.String()),
		zap.String("day_bucket", strconv.FormatInt(dayBucket, 10)),
		zap.Int64("energy_usage", record.EnergyUsage),
	)

	return record, nil
}

func (s *Service) ListRange(ctx context.Context, deviceID string, from, to int64) ([]usagedomain.EnergyRecord, error) {
	deviceID = strings.TrimSpace(deviceID)

	// The range is aligned with the same truncation rule as insertion, so a
	// timestamp anywhere inside a day matches that day's records.
	if _, err := s.devices.Get(ctx, deviceID); err != nil {
		return nil, err
	}

	return s.repo.ListRange(ctx, s.db, deviceID, clock.DayBucket(from), clock.DayBucket(to))
}

func (s *Service) reject(reason string) {
	if s.metrics != nil {
		s.metrics.ReadingsRejected.WithLabelValues(reason).Inc()
	}
}
