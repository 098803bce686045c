package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Alex2003763/Fintracker-sub002/config"
	"github.com/Alex2003763/Fintracker-sub002/internal/logger"
	"github.com/Alex2003763/Fintracker-sub002/internal/middleware"
	"github.com/Alex2003763/Fintracker-sub002/internal/routes"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	exportGuard *middleware.ExportGuard,
) {
	router.Use(middleware.CORSMiddleware())

	api := router.Group("/api")
	{
		reports := api.Group("/reports")
		{
			reports.POST("/preview", handler.PreviewReport)
			reports.POST("/export", middleware.GuardExports(exportGuard), handler.ExportReport)
		}

		api.POST("/health-score", handler.GetHealthScore)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
