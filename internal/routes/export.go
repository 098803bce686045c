package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alex2003763/Fintracker-sub002/internal/contracts"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

// ExportReport gera o documento do relatório e o devolve como download.
// A superfície de gráfico padrão é montada com a série de despesas do
// período antes da captura, garantindo que a captura só aconteça com a
// superfície montada e com dimensões não nulas.
func (h *Handler) ExportReport(c *gin.Context) {
	var req contracts.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	cfg := req.Config
	if cfg.IncludeCharts && h.Renderer != nil {
		surface := h.Config.Report.DefaultChartSurface
		filtered := metrics.FilterByRange(req.Transactions, cfg.DateRange)
		h.Renderer.Mount(surface, report.ChartSeries(filtered))
		defer h.Renderer.Unmount(surface)
	}

	result, err := h.ExportService.Export(c.Request.Context(), cfg, req.Transactions, req.Budgets, req.Goals)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
