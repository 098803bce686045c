package contracts

import (
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/goal"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

// ExportRequest carrega a configuração do relatório e as coleções de
// registros fornecidas pela aplicação que nos cerca.
type ExportRequest struct {
	Config       report.Configuration `json:"config" binding:"required"`
	Transactions []transaction.Record `json:"transactions" binding:"omitempty,dive"`
	Budgets      []budget.Record      `json:"budgets" binding:"omitempty,dive"`
	Goals        []goal.Record        `json:"goals" binding:"omitempty,dive"`
}
