package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alex2003763/Fintracker-sub002/internal/contracts"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

// PreviewReport monta o relatório e devolve a representação
// intermediária como JSON para exibição ao vivo. O caminho de dados é o
// mesmo da exportação, então tela e documento nunca divergem.
func (h *Handler) PreviewReport(c *gin.Context) {
	var req contracts.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	cfg := req.Config
	if err := cfg.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	data, meta, err := report.Assemble(cfg, req.Transactions, req.Budgets, req.Goals)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ReportPreviewResponse{Data: data, Metadata: meta})
}
