package metrics

import (
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	NetSavings   float64 `json:"netSavings"`
	SavingsRate  float64 `json:"savingsRate"`
}

// SummaryMetrics totaliza receitas e despesas do conjunto informado.
// SavingsRate é NetSavings/TotalIncome em porcentagem; com receita zero a
// taxa é 0 por política, não por erro.
func SummaryMetrics(records []transaction.Record) Summary {
	var summary Summary
	for _, record := range records {
		switch record.Type {
		case transaction.TypeIncome:
			summary.TotalIncome += record.Amount
		case transaction.TypeExpense:
			summary.TotalExpense += record.Amount
		}
	}

	summary.NetSavings = summary.TotalIncome - summary.TotalExpense
	if summary.TotalIncome > 0 {
		summary.SavingsRate = (summary.NetSavings / summary.TotalIncome) * 100
	}

	return summary
}
