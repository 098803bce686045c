package metrics

import (
	"sort"
	"time"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

type ForecastRow struct {
	Category       string  `json:"category"`
	BudgetAmount   float64 `json:"budgetAmount"`
	SpentSoFar     float64 `json:"spentSoFar"`
	ProjectedTotal float64 `json:"projectedTotal"`
	OverBudget     bool    `json:"overBudget"`
}

// BudgetForecast projeta o gasto de fim de mês por categoria com uma
// extrapolação linear: a média diária observada até asOfDate é aplicada
// aos dias restantes do mês. Orçamentos de valor zero são excluídos para
// não quebrar a chave de ordenação projetado/orçado.
func BudgetForecast(transactions []transaction.Record, budgets []budget.Record, asOfDate time.Time) []ForecastRow {
	monthKey := budget.MonthKeyOf(asOfDate)
	dayOfMonth := asOfDate.Day()
	daysInMonth := time.Date(asOfDate.Year(), asOfDate.Month(), 1, 0, 0, 0, 0, asOfDate.Location()).
		AddDate(0, 1, -1).Day()
	remainingDays := daysInMonth - dayOfMonth

	spentByCategory := make(map[string]float64)
	for _, record := range transactions {
		if record.IsExpense() && budget.MonthKeyOf(record.Date) == monthKey {
			spentByCategory[record.Category] += record.Amount
		}
	}

	rows := make([]ForecastRow, 0, len(budgets))
	for _, b := range budgets {
		if b.Month != monthKey || b.Amount == 0 {
			continue
		}

		spent := spentByCategory[b.Category]
		projected := spent
		if spent > 0 {
			projected = spent + (spent/float64(dayOfMonth))*float64(remainingDays)
		}

		rows = append(rows, ForecastRow{
			Category:       b.Category,
			BudgetAmount:   b.Amount,
			SpentSoFar:     spent,
			ProjectedTotal: projected,
			OverBudget:     projected > b.Amount,
		})
	}

	// Mais em risco primeiro.
	sort.Slice(rows, func(i, j int) bool {
		ri := rows[i].ProjectedTotal / rows[i].BudgetAmount
		rj := rows[j].ProjectedTotal / rows[j].BudgetAmount
		if ri != rj {
			return ri > rj
		}
		return rows[i].Category < rows[j].Category
	})

	return rows
}
