package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/goal"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

// Assemble filtra os registros pelo período da configuração e monta a
// representação intermediária do relatório. Um período sem registros não
// é erro: o detalhe sai com zero linhas e os codificadores renderizam o
// estado vazio.
func Assemble(cfg Configuration, transactions []transaction.Record, budgets []budget.Record, goals []goal.Record) (*Data, *Metadata, error) {
	filtered := metrics.FilterByRange(transactions, cfg.DateRange)

	detail, err := assembleDetail(cfg, filtered, budgets, goals)
	if err != nil {
		return nil, nil, err
	}

	data := &Data{
		Detail:      detail,
		ChartSeries: ChartSeries(filtered),
	}
	if cfg.IncludeSummary {
		data.Summary = summaryEntries(metrics.SummaryMetrics(filtered))
	}

	normalized := cfg.DateRange.Normalize()
	meta := &Metadata{
		Title:       cfg.ReportType.Label(),
		PeriodLabel: normalized.Start.Format("2006-01-02") + " to " + normalized.End.Format("2006-01-02"),
		GeneratedAt: time.Now(),
		RecordCount: len(filtered),
	}

	return data, meta, nil
}

// assembleDetail despacha sobre o tipo de relatório. O switch é o ponto
// de extensão: um tipo novo só entra adicionando o case e o builder.
func assembleDetail(cfg Configuration, filtered []transaction.Record, budgets []budget.Record, goals []goal.Record) (Detail, error) {
	switch cfg.ReportType {
	case TypeMonthlySummary:
		return monthlySummaryDetail(filtered), nil
	case TypeCategoryBreakdown:
		return categoryBreakdownDetail(filtered), nil
	case TypeBudgetPerformance:
		return budgetPerformanceDetail(filtered, budgets, cfg.DateRange), nil
	case TypeGoalProgress:
		return goalProgressDetail(goals), nil
	case TypeTransactionHistory:
		return transactionHistoryDetail(filtered), nil
	case TypeTaxExpenses:
		return taxExpensesDetail(filtered), nil
	default:
		return Detail{}, appErrors.ErrUnsupportedReportType.WithDetails(map[string]interface{}{
			"reportType": string(cfg.ReportType),
		})
	}
}

func summaryEntries(summary metrics.Summary) []SummaryEntry {
	return []SummaryEntry{
		{Name: "Total Income", Value: formatMoney(summary.TotalIncome)},
		{Name: "Total Expense", Value: formatMoney(summary.TotalExpense)},
		{Name: "Net Savings", Value: formatMoney(summary.NetSavings)},
		{Name: "Savings Rate", Value: formatPercent(summary.SavingsRate)},
	}
}

// ChartSeries é sempre o detalhamento de despesas por categoria,
// independente do tipo de relatório, para reuso por qualquer codificador
// que precise da série bruta.
func ChartSeries(filtered []transaction.Record) []ChartPoint {
	rows := metrics.ExpenseBreakdown(filtered)
	series := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		series = append(series, ChartPoint{Category: row.Category, Amount: row.Amount})
	}
	return series
}

func monthlySummaryDetail(filtered []transaction.Record) Detail {
	rows := metrics.MonthlyAggregates(filtered)
	detail := Detail{
		Headers: []string{"Month", "Income", "Expenses", "Net Savings"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		detail.Rows = append(detail.Rows, []string{
			row.MonthKey,
			formatMoney(row.Income),
			formatMoney(row.Expense),
			formatMoney(row.NetSavings),
		})
	}
	return detail
}

func categoryBreakdownDetail(filtered []transaction.Record) Detail {
	rows := metrics.CategoryBreakdown(filtered)
	detail := Detail{
		Headers: []string{"Category", "Type", "Count", "% of Total", "Amount"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		percent := "-"
		if row.Type == transaction.TypeExpense {
			percent = formatPercent(row.Percent)
		}
		detail.Rows = append(detail.Rows, []string{
			row.Category,
			string(row.Type),
			fmt.Sprintf("%d", row.Count),
			percent,
			formatMoney(row.Amount),
		})
	}
	return detail
}

func budgetPerformanceDetail(filtered []transaction.Record, budgets []budget.Record, dateRange metrics.DateRange) Detail {
	// O mês corrente da projeção é o mês do fim do período relatado.
	rows := metrics.BudgetForecast(filtered, budgets, dateRange.Normalize().End)
	detail := Detail{
		Headers: []string{"Category", "Budget", "Spent", "Status", "Projected"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		status := "On track"
		if row.OverBudget {
			status = "Over budget"
		}
		detail.Rows = append(detail.Rows, []string{
			row.Category,
			formatMoney(row.BudgetAmount),
			formatMoney(row.SpentSoFar),
			status,
			formatMoney(row.ProjectedTotal),
		})
	}
	return detail
}

func goalProgressDetail(goals []goal.Record) Detail {
	sorted := make([]goal.Record, len(goals))
	copy(sorted, goals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	detail := Detail{
		Headers: []string{"Goal", "Target", "Saved", "Progress"},
		Rows:    make([][]string, 0, len(sorted)),
	}
	for _, g := range sorted {
		detail.Rows = append(detail.Rows, []string{
			g.Name,
			formatMoney(g.TargetAmount),
			formatMoney(g.CurrentAmount()),
			formatPercent(g.Progress()),
		})
	}
	return detail
}

func transactionHistoryDetail(filtered []transaction.Record) Detail {
	sorted := sortByDate(filtered)
	detail := Detail{
		Headers: []string{"Date", "Type", "Category", "Description", "Amount"},
		Rows:    make([][]string, 0, len(sorted)),
	}
	for _, record := range sorted {
		detail.Rows = append(detail.Rows, []string{
			record.Date.Format("2006-01-02"),
			string(record.Type),
			record.Category,
			record.Description,
			formatMoney(record.Amount),
		})
	}
	return detail
}

func taxExpensesDetail(filtered []transaction.Record) Detail {
	sorted := sortByDate(filtered)
	detail := Detail{
		Headers: []string{"Date", "Category", "Description", "Amount"},
		Rows:    make([][]string, 0, len(sorted)),
	}
	for _, record := range sorted {
		if !record.IsExpense() {
			continue
		}
		detail.Rows = append(detail.Rows, []string{
			record.Date.Format("2006-01-02"),
			record.Category,
			record.Description,
			formatMoney(record.Amount),
		})
	}
	return detail
}

func sortByDate(records []transaction.Record) []transaction.Record {
	sorted := make([]transaction.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func formatMoney(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
