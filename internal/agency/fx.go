package agency

import (
	"github.com/smallbiznis/rentora/internal/agency/repository"
	"github.com/smallbiznis/rentora/internal/agency/service"
	"go.uber.org/fx"
)

var Module = fx.Module("agency.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
