package encoder_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/metrics"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	"github.com/Alex2003763/Fintracker-sub002/internal/encoder"
)

func testConfig(format report.Format) report.Configuration {
	start, _ := time.Parse("2006-01-02", "2024-07-01")
	end, _ := time.Parse("2006-01-02", "2024-07-31")
	return report.Configuration{
		Format:         format,
		ReportType:     report.TypeMonthlySummary,
		DateRange:      metrics.DateRange{Start: start, End: end},
		IncludeSummary: true,
		IncludeDetails: true,
		IncludeCharts:  true,
	}
}

func testMeta() *report.Metadata {
	generated, _ := time.Parse("2006-01-02", "2024-07-31")
	return &report.Metadata{
		Title:       "Monthly Summary",
		PeriodLabel: "2024-07-01 to 2024-07-31",
		GeneratedAt: generated,
		RecordCount: 3,
	}
}

func testData() *report.Data {
	return &report.Data{
		Summary: []report.SummaryEntry{
			{Name: "Total Income", Value: "1000.00"},
			{Name: "Total Expense", Value: "80.00"},
			{Name: "Net Savings", Value: "920.00"},
			{Name: "Savings Rate", Value: "92.0%"},
		},
		Detail: report.Detail{
			Headers: []string{"Month", "Income", "Expenses", "Net Savings"},
			Rows: [][]string{
				{"2024-07", "1000.00", "80.00", "920.00"},
			},
		},
		ChartSeries: []report.ChartPoint{
			{Category: "Food", Amount: 80},
		},
	}
}

func emptyData() *report.Data {
	return &report.Data{
		Detail: report.Detail{
			Headers: []string{"Month", "Income", "Expenses", "Net Savings"},
			Rows:    [][]string{},
		},
	}
}

func TestEncodersHandleEmptyDetail(t *testing.T) {
	t.Parallel()

	formats := []report.Format{
		report.FormatPDF,
		report.FormatSpreadsheet,
		report.FormatDelimitedText,
	}

	for _, format := range formats {
		format := format
		t.Run(string(format), func(t *testing.T) {
			enc := encoder.ForFormat("Fintracker", format)
			out, err := enc.Encode(testConfig(format), emptyData(), testMeta())
			if err != nil {
				t.Fatalf("zero rows must still encode: %v", err)
			}
			if len(out) == 0 {
				t.Fatalf("expected a document, got empty output")
			}
		})
	}
}

func TestPDFEncoder(t *testing.T) {
	t.Parallel()

	enc := encoder.ForFormat("Fintracker", report.FormatPDF)
	out, err := enc.Encode(testConfig(report.FormatPDF), testData(), testMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", out[:8])
	}
}

func TestPDFEncoderPaginatesLongTables(t *testing.T) {
	t.Parallel()

	data := testData()
	for i := 0; i < 200; i++ {
		data.Detail.Rows = append(data.Detail.Rows, []string{"2024-07", "10.00", "5.00", "5.00"})
	}

	enc := encoder.ForFormat("Fintracker", report.FormatPDF)
	out, err := enc.Encode(testConfig(report.FormatPDF), data, testMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 200 linhas não cabem numa página A4; o documento precisa de várias.
	if pages := bytes.Count(out, []byte("/Type /Page")); pages < 2 {
		t.Fatalf("expected multiple pages, found %d markers", pages)
	}
}

func TestSpreadsheetEncoderSheets(t *testing.T) {
	t.Parallel()

	enc := encoder.ForFormat("Fintracker", report.FormatSpreadsheet)
	out, err := enc.Encode(testConfig(report.FormatSpreadsheet), testData(), testMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Transactions", "Chart Data"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Fatalf("expected sheet %s at %d, got %s", name, i, sheets[i])
		}
	}

	value, err := f.GetCellValue("Transactions", "A2")
	if err != nil || value != "2024-07" {
		t.Fatalf("expected detail row in Transactions sheet, got %q (%v)", value, err)
	}
}

func TestSpreadsheetEncoderConditionalSheets(t *testing.T) {
	t.Parallel()

	cfg := testConfig(report.FormatSpreadsheet)
	cfg.IncludeDetails = false
	cfg.IncludeCharts = false

	enc := encoder.ForFormat("Fintracker", report.FormatSpreadsheet)
	out, err := enc.Encode(cfg, testData(), testMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Summary" {
		t.Fatalf("expected only the Summary sheet, got %v", sheets)
	}
}

func TestDelimitedTextEncoder(t *testing.T) {
	t.Parallel()

	enc := encoder.ForFormat("Fintracker", report.FormatDelimitedText)
	out, err := enc.Encode(testConfig(report.FormatDelimitedText), testData(), testMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Month,Income,Expenses,Net Savings\n2024-07,1000.00,80.00,920.00\n"
	if string(out) != want {
		t.Fatalf("expected %q, got %q", want, string(out))
	}
}

func TestForFormatFallback(t *testing.T) {
	t.Parallel()

	enc := encoder.ForFormat("Fintracker", report.Format("docx"))
	if _, ok := enc.(*encoder.DelimitedTextEncoder); !ok {
		t.Fatalf("unsupported format must fall back to delimited text, got %T", enc)
	}
}
