package aggregate

import (
	"github.com/gridbits/enertrack/internal/aggregate/repository"
	"github.com/gridbits/enertrack/internal/aggregate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("aggregate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
