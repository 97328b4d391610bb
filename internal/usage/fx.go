package usage

import (
	"github.com/gridbits/enertrack/internal/usage/repository"
	"github.com/gridbits/enertrack/internal/usage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("usage.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
