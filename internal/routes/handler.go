package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Alex2003763/Fintracker-sub002/config"
	"github.com/Alex2003763/Fintracker-sub002/internal/charts"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
	"github.com/Alex2003763/Fintracker-sub002/internal/export"
	"github.com/Alex2003763/Fintracker-sub002/internal/logger"
)

type Handler struct {
	Config        *config.Config
	ExportService *export.Service
	Renderer      *charts.Renderer
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
