package render

import (
	"go.uber.org/fx"
)

var Module = fx.Module("billing",
	fx.Provide(New),
)
