package contracts

import (
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

type HealthScoreRequest struct {
	Transactions  []transaction.Record `json:"transactions" binding:"omitempty,dive"`
	Budgets       []budget.Record      `json:"budgets" binding:"omitempty,dive"`
	CurrentMonth  string               `json:"currentMonth" binding:"required"`
	PreviousMonth string               `json:"previousMonth" binding:"required"`
}

type HealthScoreResponse struct {
	Score      int                     `json:"score"`
	Status     string                  `json:"status"`
	Label      string                  `json:"label"`
	Color      string                  `json:"color"`
	Components metrics.ComponentScores `json:"components"`
}
