package device

import (
	"github.com/gridbits/enertrack/internal/device/repository"
	"github.com/gridbits/enertrack/internal/device/service"
	"go.uber.org/fx"
)

var Module = fx.Module("device.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
