package fx

import (
	"go.uber.org/fx"

	"github.com/Alex2003763/Fintracker-sub002/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		middleware.NewExportGuard,
	),
)
