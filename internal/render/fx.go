package render

import "go.uber.org/fx"

var Module = fx.Module("invoice.render",
	fx.Provide(NewRenderer),
)
