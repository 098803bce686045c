package report

import (
	"strings"
	"time"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

type Format string

const (
	FormatPDF           Format = "pdf"
	FormatSpreadsheet   Format = "spreadsheet"
	FormatDelimitedText Format = "delimited-text"
)

type Type string

const (
	TypeMonthlySummary     Type = "monthly_summary"
	TypeCategoryBreakdown  Type = "category_breakdown"
	TypeBudgetPerformance  Type = "budget_performance"
	TypeGoalProgress       Type = "goal_progress"
	TypeTransactionHistory Type = "transaction_history"
	TypeTaxExpenses        Type = "tax_expenses"
)

func (t Type) Label() string {
	switch t {
	case TypeMonthlySummary:
		return "Monthly Summary"
	case TypeCategoryBreakdown:
		return "Category Breakdown"
	case TypeBudgetPerformance:
		return "Budget Performance"
	case TypeGoalProgress:
		return "Goal Progress"
	case TypeTransactionHistory:
		return "Transaction History"
	case TypeTaxExpenses:
		return "Tax Expenses"
	default:
		return "Report"
	}
}

func (t Type) IsValid() bool {
	switch t {
	case TypeMonthlySummary, TypeCategoryBreakdown, TypeBudgetPerformance,
		TypeGoalProgress, TypeTransactionHistory, TypeTaxExpenses:
		return true
	}
	return false
}

// Extension mapeia o formato para a extensão do arquivo gerado. Formatos
// desconhecidos degradam para o codificador de texto delimitado.
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatSpreadsheet:
		return "xlsx"
	default:
		return "csv"
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatSpreadsheet:
		return "application/octet-stream"
	default:
		return "text/csv"
	}
}

// Configuration é o único insumo externo que determina o comportamento do
// pipeline. É construída uma vez por exportação e passada por valor,
// nunca compartilhada nem alterada no meio do fluxo.
type Configuration struct {
	Format          Format            `json:"format" binding:"required"`
	ReportType      Type              `json:"reportType" binding:"required"`
	DateRange       metrics.DateRange `json:"dateRange" binding:"required"`
	IncludeCharts   bool              `json:"includeCharts"`
	IncludeSummary  bool              `json:"includeSummary"`
	IncludeDetails  bool              `json:"includeDetails"`
	ChartSurfaceIds []string          `json:"chartSurfaceIds,omitempty"`
}

// Validate rejeita configurações inválidas antes de qualquer trabalho.
// Formato desconhecido não é erro: degrada para texto delimitado na
// seleção do codificador.
func (c Configuration) Validate() error {
	if !c.ReportType.IsValid() {
		return appErrors.ErrUnsupportedReportType.WithDetails(map[string]interface{}{
			"reportType": string(c.ReportType),
		})
	}
	if !c.DateRange.IsValid() {
		return appErrors.ErrInvalidPeriod
	}
	return nil
}

// Filename segue a convenção {Label_com_underscores}_{YYYY-MM-DD}.{ext}.
func (c Configuration) Filename(generatedAt time.Time) string {
	label := strings.ReplaceAll(c.ReportType.Label(), " ", "_")
	return label + "_" + generatedAt.Format("2006-01-02") + "." + c.Format.Extension()
}
