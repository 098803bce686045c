package fx

import (
	"go.uber.org/fx"

	"github.com/Alex2003763/Fintracker-sub002/config"
	"github.com/Alex2003763/Fintracker-sub002/internal/charts"
	"github.com/Alex2003763/Fintracker-sub002/internal/export"
	"github.com/Alex2003763/Fintracker-sub002/internal/routes"
)

// DomainModule fornece o renderizador de gráficos, o serviço de
// exportação e o handler HTTP.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newChartRenderer,
		newExportService,
		newHandler,
	),
)

func newChartRenderer(cfg *config.Config) *charts.Renderer {
	return charts.NewRenderer(cfg)
}

func newExportService(cfg *config.Config, renderer *charts.Renderer) *export.Service {
	return export.NewService(cfg, renderer)
}

func newHandler(cfg *config.Config, exportSvc *export.Service, renderer *charts.Renderer) *routes.Handler {
	return &routes.Handler{
		Config:        cfg,
		ExportService: exportSvc,
		Renderer:      renderer,
	}
}
