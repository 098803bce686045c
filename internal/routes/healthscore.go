package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alex2003763/Fintracker-sub002/internal/contracts"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

func (h *Handler) GetHealthScore(c *gin.Context) {
	var req contracts.HealthScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	if _, err := time.Parse(budget.MonthKeyLayout, req.CurrentMonth); err != nil {
		h.respondError(c, appErrors.NewValidationError("currentMonth", "formato inválido. Use YYYY-MM"))
		return
	}
	if _, err := time.Parse(budget.MonthKeyLayout, req.PreviousMonth); err != nil {
		h.respondError(c, appErrors.NewValidationError("previousMonth", "formato inválido. Use YYYY-MM"))
		return
	}

	result := metrics.FinancialHealthScore(req.Transactions, req.Budgets, req.CurrentMonth, req.PreviousMonth)
	scoreRange := metrics.GetHealthScoreRange(result.Score)

	c.JSON(http.StatusOK, contracts.HealthScoreResponse{
		Score:      result.Score,
		Status:     result.Status,
		Label:      scoreRange.Label,
		Color:      scoreRange.Color,
		Components: result.Components,
	})
}
