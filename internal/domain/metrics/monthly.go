package metrics

import (
	"sort"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

type MonthlyRow struct {
	MonthKey   string  `json:"monthKey"`
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	NetSavings float64 `json:"netSavings"`
}

// MonthlyAggregates agrupa os registros pelo mês calendário da data,
// em ordem cronológica crescente.
func MonthlyAggregates(records []transaction.Record) []MonthlyRow {
	totals := make(map[string]*MonthlyRow)

	for _, record := range records {
		monthKey := budget.MonthKeyOf(record.Date)
		row, ok := totals[monthKey]
		if !ok {
			row = &MonthlyRow{MonthKey: monthKey}
			totals[monthKey] = row
		}
		switch record.Type {
		case transaction.TypeIncome:
			row.Income += record.Amount
		case transaction.TypeExpense:
			row.Expense += record.Amount
		}
	}

	rows := make([]MonthlyRow, 0, len(totals))
	for _, row := range totals {
		row.NetSavings = row.Income - row.Expense
		rows = append(rows, *row)
	}

	// A chave YYYY-MM ordena lexicograficamente em ordem cronológica.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].MonthKey < rows[j].MonthKey
	})

	return rows
}
