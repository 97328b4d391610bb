package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"github.com/gridbits/enertrack/internal/aggregate/repository"
	"github.com/gridbits/enertrack/internal/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAggregateService(t *testing.T) (aggregatedomain.Service, aggregatedomain.Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&aggregatedomain.MonthlyAggregate{}))

	repo := repository.Provide()
	svc := New(Params{DB: db, Log: zap.NewNop(), Repo: repo})
	return svc, repo, db
}

func TestGetReturnsZeroValueWhenEmpty(t *testing.T) {
	svc, _, _ := setupAggregateService(t)

	month := clock.MonthBucket(1_750_000_000)
	aggregate, err := svc.Get(context.Background(), "device1", month)
	require.NoError(t, err)
	require.Equal(t, "device1", aggregate.DeviceID)
	require.Equal(t, month, aggregate.MonthBucket)
	require.Zero(t, aggregate.TotalEnergyUsage)
	require.Zero(t, aggregate.DaysRecorded)
}

func TestApplyAccumulates(t *testing.T) {
	svc, repo, db := setupAggregateService(t)
	ctx := context.Background()

	month := clock.MonthBucket(1_750_000_000)
	require.NoError(t, repo.Apply(ctx, db, "device1", month, 100))
	require.NoError(t, repo.Apply(ctx, db, "device1", month, 50))

	aggregate, err := svc.Get(ctx, "device1", month)
	require.NoError(t, err)
	require.EqualValues(t, 150, aggregate.TotalEnergyUsage)
	// Two insertions, one calendar day or not: the count tracks records.
	require.EqualValues(t, 2, aggregate.DaysRecorded)
}

func TestApplyIsScopedToKey(t *testing.T) {
	svc, repo, db := setupAggregateService(t)
	ctx := context.Background()

	month := clock.MonthBucket(1_750_000_000)
	nextMonth := month + clock.MonthSeconds
	require.NoError(t, repo.Apply(ctx, db, "device1", month, 100))
	require.NoError(t, repo.Apply(ctx, db, "device1", nextMonth, 9))
	require.NoError(t, repo.Apply(ctx, db, "device2", month, 7))

	aggregate, err := svc.Get(ctx, "device1", month)
	require.NoError(t, err)
	require.EqualValues(t, 100, aggregate.TotalEnergyUsage)
	require.EqualValues(t, 1, aggregate.DaysRecorded)

	// An unaligned key is looked up verbatim, so it misses the stored row.
	unaligned, err := svc.Get(ctx, "device1", month+1)
	require.NoError(t, err)
	require.Zero(t, unaligned.TotalEnergyUsage)
}
