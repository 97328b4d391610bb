package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gridbits/enertrack/internal/aggregate"
	"github.com/gridbits/enertrack/internal/clock"
	"github.com/gridbits/enertrack/internal/config"
	"github.com/gridbits/enertrack/internal/device"
	"github.com/gridbits/enertrack/internal/events"
	"github.com/gridbits/enertrack/internal/migration"
	"github.com/gridbits/enertrack/internal/observability"
	"github.com/gridbits/enertrack/internal/server"
	"github.com/gridbits/enertrack/internal/usage"
	"github.com/gridbits/enertrack/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		events.Module,
		device.Module,
		aggregate.Module,
		usage.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
