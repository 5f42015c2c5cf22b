package valuation

import (
	"github.com/smallbiznis/rentora/internal/valuation/repository"
	"github.com/smallbiznis/rentora/internal/valuation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("valuation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
