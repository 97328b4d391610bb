package service

import (
	"context"
	"strings"

	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo aggregatedomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo aggregatedomain.Repository
}

func New(p Params) aggregatedomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("aggregate.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, deviceID string, monthBucket int64) (aggregatedomain.MonthlyAggregate, error) {
	deviceID = strings.TrimSpace(deviceID)

	aggregate, err := s.repo.Find(ctx, s.db, deviceID, monthBucket)
	if err != nil {
		return aggregatedomain.MonthlyAggregate{}, err
	}
	if aggregate == nil {
		return aggregatedomain.MonthlyAggregate{
			DeviceID:    deviceID,
			MonthBucket: monthBucket,
		}, nil
	}
	return *aggregate, nil
}
