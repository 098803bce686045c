package metrics

import (
	"math"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
)

const (
	weightSavings         = 0.30
	weightBudgetAdherence = 0.30
	weightTrend           = 0.20
	weightActivity        = 0.20
)

type ComponentScores struct {
	Savings         float64 `json:"savings"`
	BudgetAdherence float64 `json:"budgetAdherence"`
	Trend           float64 `json:"trend"`
	Activity        float64 `json:"activity"`
}

type HealthScore struct {
	Score      int             `json:"score"`
	Status     string          `json:"status"`
	Components ComponentScores `json:"components"`
}

type HealthScoreRange struct {
	Min    int
	Label  string
	Color  string
	Status string
}

var HealthScoreRanges = []HealthScoreRange{
	{Min: 80, Label: "Excelente", Color: "#4CAF50", Status: "Excellent"},
	{Min: 60, Label: "Bom", Color: "#8BC34A", Status: "Good"},
	{Min: 40, Label: "Regular", Color: "#FF9800", Status: "Fair"},
	{Min: 0, Label: "Precisa Melhorar", Color: "#F44336", Status: "Needs Improvement"},
}

func GetHealthScoreRange(score int) HealthScoreRange {
	for _, r := range HealthScoreRanges {
		if score >= r.Min {
			return r
		}
	}
	return HealthScoreRanges[len(HealthScoreRanges)-1]
}

// FinancialHealthScore compõe quatro sub-scores ponderados, cada um
// limitado a [0,100]:
//   - poupança: taxa de 20% equivale a score cheio;
//   - aderência ao orçamento: porcentagem dos orçamentos do mês corrente
//     cujo gasto não passou da alocação (100 quando não há orçamentos);
//   - tendência: 100 se a despesa do mês corrente não subiu em relação ao
//     anterior, senão 100 menos o aumento percentual;
//   - atividade: menos de 5 transações no período reduz linearmente,
//     recompensando o registro consistente, não o comportamento de gasto.
//
// Os meses são chaves calendário YYYY-MM.
func FinancialHealthScore(transactions []transaction.Record, budgets []budget.Record, currentMonth, previousMonth string) HealthScore {
	var current, previous []transaction.Record
	for _, record := range transactions {
		switch budget.MonthKeyOf(record.Date) {
		case currentMonth:
			current = append(current, record)
		case previousMonth:
			previous = append(previous, record)
		}
	}

	components := ComponentScores{
		Savings:         savingsScore(current),
		BudgetAdherence: budgetAdherenceScore(current, budgets, currentMonth),
		Trend:           trendScore(current, previous),
		Activity:        activityScore(current),
	}

	weighted := components.Savings*weightSavings +
		components.BudgetAdherence*weightBudgetAdherence +
		components.Trend*weightTrend +
		components.Activity*weightActivity
	score := int(math.Round(weighted))

	return HealthScore{
		Score:      score,
		Status:     GetHealthScoreRange(score).Status,
		Components: components,
	}
}

func savingsScore(records []transaction.Record) float64 {
	rate := SummaryMetrics(records).SavingsRate
	return clampScore((rate / 20) * 100)
}

func budgetAdherenceScore(records []transaction.Record, budgets []budget.Record, monthKey string) float64 {
	spentByCategory := make(map[string]float64)
	for _, record := range records {
		if record.IsExpense() {
			spentByCategory[record.Category] += record.Amount
		}
	}

	var total, within int
	for _, b := range budgets {
		if b.Month != monthKey {
			continue
		}
		total++
		if b.IsWithinBudget(spentByCategory[b.Category]) {
			within++
		}
	}

	// A ausência de orçamentos não é penalizada.
	if total == 0 {
		return 100
	}
	return clampScore(float64(within) / float64(total) * 100)
}

func trendScore(current, previous []transaction.Record) float64 {
	currentExpense := SummaryMetrics(current).TotalExpense
	previousExpense := SummaryMetrics(previous).TotalExpense

	if currentExpense <= previousExpense {
		return 100
	}
	if previousExpense == 0 {
		return 0
	}

	percentIncrease := ((currentExpense - previousExpense) / previousExpense) * 100
	return clampScore(100 - percentIncrease)
}

func activityScore(records []transaction.Record) float64 {
	return clampScore(float64(len(records)) / 5 * 100)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
