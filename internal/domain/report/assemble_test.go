package report_test

import (
	"testing"
	"time"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/goal"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
	"github.com/Alex2003763/Fintracker-sub002/internal/pkg"
)

func day(date string) time.Time {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return parsed
}

func tx(typ transaction.Types, category string, amount float64, date string) transaction.Record {
	return transaction.Record{
		Id:       pkg.GenerateULIDObject(),
		Type:     typ,
		Category: category,
		Amount:   amount,
		Date:     day(date),
	}
}

func julyConfig(reportType report.Type) report.Configuration {
	return report.Configuration{
		Format:         report.FormatPDF,
		ReportType:     reportType,
		DateRange:      metrics.DateRange{Start: day("2024-07-01"), End: day("2024-07-31")},
		IncludeSummary: true,
		IncludeDetails: true,
	}
}

func TestAssembleMonthlySummary(t *testing.T) {
	t.Parallel()

	transactions := []transaction.Record{
		tx(transaction.TypeExpense, "Food", 50, "2024-07-10"),
		tx(transaction.TypeExpense, "Food", 30, "2024-07-12"),
		tx(transaction.TypeIncome, "Salary", 1000, "2024-07-01"),
	}

	data, meta, err := report.Assemble(julyConfig(report.TypeMonthlySummary), transactions, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"Total Income":  "1000.00",
		"Total Expense": "80.00",
		"Net Savings":   "920.00",
		"Savings Rate":  "92.0%",
	}
	if len(data.Summary) != len(want) {
		t.Fatalf("expected %d summary entries, got %d", len(want), len(data.Summary))
	}
	for _, entry := range data.Summary {
		if want[entry.Name] != entry.Value {
			t.Fatalf("summary %s: expected %s, got %s", entry.Name, want[entry.Name], entry.Value)
		}
	}

	if len(data.Detail.Rows) != 1 {
		t.Fatalf("expected exactly one monthly row, got %d", len(data.Detail.Rows))
	}
	row := data.Detail.Rows[0]
	if row[0] != "2024-07" || row[1] != "1000.00" || row[2] != "80.00" || row[3] != "920.00" {
		t.Fatalf("unexpected monthly row: %v", row)
	}

	if meta.Title != "Monthly Summary" || meta.RecordCount != 3 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestAssembleRowsMatchHeaders(t *testing.T) {
	t.Parallel()

	transactions := []transaction.Record{
		tx(transaction.TypeIncome, "Salary", 1000, "2024-07-01"),
		tx(transaction.TypeExpense, "Food", 80, "2024-07-02"),
	}
	budgets := []budget.Record{
		{Category: "Food", Month: "2024-07", Amount: 200},
	}
	goals := []goal.Record{
		{Name: "Trip", TargetAmount: 500, Contributions: []goal.Contribution{{Amount: 125}}},
	}

	types := []report.Type{
		report.TypeMonthlySummary,
		report.TypeCategoryBreakdown,
		report.TypeBudgetPerformance,
		report.TypeGoalProgress,
		report.TypeTransactionHistory,
		report.TypeTaxExpenses,
	}

	for _, reportType := range types {
		reportType := reportType
		t.Run(string(reportType), func(t *testing.T) {
			data, _, err := report.Assemble(julyConfig(reportType), transactions, budgets, goals)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data.Detail.Headers) == 0 {
				t.Fatalf("expected headers")
			}
			for i, row := range data.Detail.Rows {
				if len(row) != len(data.Detail.Headers) {
					t.Fatalf("row %d has %d cells for %d headers", i, len(row), len(data.Detail.Headers))
				}
			}
		})
	}
}

func TestAssembleEmptyRange(t *testing.T) {
	t.Parallel()

	transactions := []transaction.Record{
		tx(transaction.TypeExpense, "Food", 50, "2023-01-10"),
	}

	data, meta, err := report.Assemble(julyConfig(report.TypeTransactionHistory), transactions, nil, nil)
	if err != nil {
		t.Fatalf("empty range must not be an error: %v", err)
	}
	if len(data.Detail.Rows) != 0 {
		t.Fatalf("expected empty detail, got %d rows", len(data.Detail.Rows))
	}
	if meta.RecordCount != 0 {
		t.Fatalf("expected record count 0, got %d", meta.RecordCount)
	}
}

func TestAssembleChartSeriesAlwaysExpenses(t *testing.T) {
	t.Parallel()

	transactions := []transaction.Record{
		tx(transaction.TypeIncome, "Salary", 1000, "2024-07-01"),
		tx(transaction.TypeExpense, "Food", 80, "2024-07-02"),
		tx(transaction.TypeExpense, "Transport", 20, "2024-07-03"),
	}

	data, _, err := report.Assemble(julyConfig(report.TypeGoalProgress), transactions, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.ChartSeries) != 2 {
		t.Fatalf("expected 2 expense series points, got %d", len(data.ChartSeries))
	}
	if data.ChartSeries[0].Category != "Food" || data.ChartSeries[0].Amount != 80 {
		t.Fatalf("unexpected first point: %+v", data.ChartSeries[0])
	}
}

func TestAssembleTaxExpensesFiltersIncome(t *testing.T) {
	t.Parallel()

	transactions := []transaction.Record{
		tx(transaction.TypeIncome, "Salary", 1000, "2024-07-01"),
		tx(transaction.TypeExpense, "Office", 200, "2024-07-02"),
	}

	data, _, err := report.Assemble(julyConfig(report.TypeTaxExpenses), transactions, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Detail.Rows) != 1 || data.Detail.Rows[0][1] != "Office" {
		t.Fatalf("expected only the expense row, got %v", data.Detail.Rows)
	}
}

func TestConfigurationValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         report.Configuration
		wantErrCode string
	}{
		{
			name: "valid",
			cfg:  julyConfig(report.TypeMonthlySummary),
		},
		{
			name: "inverted range",
			cfg: report.Configuration{
				Format:     report.FormatPDF,
				ReportType: report.TypeMonthlySummary,
				DateRange:  metrics.DateRange{Start: day("2024-08-01"), End: day("2024-07-01")},
			},
			wantErrCode: appErrors.ErrInvalidPeriod.Code,
		},
		{
			name: "unknown report type",
			cfg: report.Configuration{
				Format:     report.FormatPDF,
				ReportType: report.Type("weekly_vibes"),
				DateRange:  metrics.DateRange{Start: day("2024-07-01"), End: day("2024-07-31")},
			},
			wantErrCode: appErrors.ErrUnsupportedReportType.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErrCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}
}

func TestConfigurationFilename(t *testing.T) {
	t.Parallel()

	cfg := julyConfig(report.TypeBudgetPerformance)
	got := cfg.Filename(day("2024-07-31"))
	if got != "Budget_Performance_2024-07-31.pdf" {
		t.Fatalf("unexpected filename: %s", got)
	}

	cfg.Format = report.Format("docx")
	if got := cfg.Filename(day("2024-07-31")); got != "Budget_Performance_2024-07-31.csv" {
		t.Fatalf("unknown format must degrade to csv, got %s", got)
	}
}
