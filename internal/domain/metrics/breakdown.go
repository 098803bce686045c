package metrics

import (
	"sort"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

type BreakdownRow struct {
	Category string            `json:"category"`
	Type     transaction.Types `json:"type"`
	Count    int               `json:"count"`
	Amount   float64           `json:"amount"`
	// Percent é calculado contra o total do mesmo tipo e só se aplica a
	// despesas; linhas de receita não recebem porcentagem.
	Percent float64 `json:"percent"`
}

// CategoryBreakdown agrupa os registros por (categoria, tipo), ordenado
// por valor decrescente com desempate por nome de categoria.
func CategoryBreakdown(records []transaction.Record) []BreakdownRow {
	type key struct {
		category string
		txType   transaction.Types
	}

	totals := make(map[key]*BreakdownRow)
	var totalExpense float64

	for _, record := range records {
		k := key{category: record.Category, txType: record.Type}
		row, ok := totals[k]
		if !ok {
			row = &BreakdownRow{Category: record.Category, Type: record.Type}
			totals[k] = row
		}
		row.Count++
		row.Amount += record.Amount
		if record.IsExpense() {
			totalExpense += record.Amount
		}
	}

	rows := make([]BreakdownRow, 0, len(totals))
	for _, row := range totals {
		if row.Type == transaction.TypeExpense && totalExpense > 0 {
			row.Percent = (row.Amount / totalExpense) * 100
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})

	return rows
}

// ExpenseBreakdown restringe o detalhamento às linhas de despesa,
// preservando a ordenação.
func ExpenseBreakdown(records []transaction.Record) []BreakdownRow {
	all := CategoryBreakdown(records)
	expenses := make([]BreakdownRow, 0, len(all))
	for _, row := range all {
		if row.Type == transaction.TypeExpense {
			expenses = append(expenses, row)
		}
	}
	return expenses
}
