package rental

import (
	"github.com/smallbiznis/rentora/internal/rental/repository"
	"github.com/smallbiznis/rentora/internal/rental/service"
	"go.uber.org/fx"
)

var Module = fx.Module("rental.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
