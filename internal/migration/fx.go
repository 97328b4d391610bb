package migration

import (
	aggregatedomain "github.com/gridbits/enertrack/internal/aggregate/domain"
	"github.com/gridbits/enertrack/internal/config"
	devicedomain "github.com/gridbits/enertrack/internal/device/domain"
	"github.com/gridbits/enertrack/internal/events"
	usagedomain "github.com/gridbits/enertrack/internal/usage/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		// mysql/sqlite are dev conveniences; let gorm derive the schema.
		return conn.AutoMigrate(
			&devicedomain.Device{},
			&usagedomain.EnergyRecord{},
			&aggregatedomain.MonthlyAggregate{},
			&events.OutboxEvent{},
		)
	}),
)
