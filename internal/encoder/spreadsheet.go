package encoder

import (
	"github.com/xuri/excelize/v2"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
)

const (
	sheetSummary      = "Summary"
	sheetTransactions = "Transactions"
	sheetChartData    = "Chart Data"

	// Largura fixa em caracteres aplicada às colunas das planilhas.
	columnWidth = 18.0
)

type SpreadsheetEncoder struct {
	Product string
}

func (e *SpreadsheetEncoder) Encode(cfg report.Configuration, data *report.Data, meta *report.Metadata) ([]byte, error) {
	state := &encodeState{}
	state.advance(stageLayingOut)

	f := excelize.NewFile()
	defer f.Close()

	// A planilha padrão vira a aba de resumo; as demais são adicionadas
	// conforme as flags da configuração.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, state.fail(err)
	}
	if err := e.writeSummarySheet(f, cfg, data, meta); err != nil {
		return nil, state.fail(err)
	}

	if cfg.IncludeDetails {
		if err := e.writeDetailSheet(f, data.Detail); err != nil {
			return nil, state.fail(err)
		}
	}

	if cfg.IncludeCharts {
		if err := e.writeChartDataSheet(f, data.ChartSeries); err != nil {
			return nil, state.fail(err)
		}
	}

	state.advance(stageFinalizing)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, state.fail(err)
	}

	state.advance(stageDone)
	return buf.Bytes(), nil
}

func (e *SpreadsheetEncoder) writeSummarySheet(f *excelize.File, cfg report.Configuration, data *report.Data, meta *report.Metadata) error {
	rows := [][]interface{}{
		{e.Product, meta.Title},
		{"Period", meta.PeriodLabel},
		{"Generated", meta.GeneratedAt.Format("2006-01-02 15:04")},
		{"Records", meta.RecordCount},
	}
	if cfg.IncludeSummary {
		rows = append(rows, []interface{}{})
		for _, entry := range data.Summary {
			rows = append(rows, []interface{}{entry.Name, entry.Value})
		}
	}

	if err := writeRows(f, sheetSummary, rows); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "B", columnWidth+6)
}

func (e *SpreadsheetEncoder) writeDetailSheet(f *excelize.File, detail report.Detail) error {
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(detail.Rows)+1)
	header := make([]interface{}, len(detail.Headers))
	for i, h := range detail.Headers {
		header[i] = h
	}
	rows = append(rows, header)

	// Sem linhas, a aba ainda sai com o cabeçalho.
	for _, row := range detail.Rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		rows = append(rows, cells)
	}

	if err := writeRows(f, sheetTransactions, rows); err != nil {
		return err
	}

	lastColumn, err := excelize.ColumnNumberToName(len(detail.Headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheetTransactions, "A", lastColumn, columnWidth)
}

// writeChartDataSheet grava os pares categoria/valor brutos para o
// usuário regenerar gráficos nativos.
func (e *SpreadsheetEncoder) writeChartDataSheet(f *excelize.File, series []report.ChartPoint) error {
	if _, err := f.NewSheet(sheetChartData); err != nil {
		return err
	}

	rows := [][]interface{}{{"Category", "Amount"}}
	for _, point := range series {
		rows = append(rows, []interface{}{point.Category, point.Amount})
	}

	if err := writeRows(f, sheetChartData, rows); err != nil {
		return err
	}
	return f.SetColWidth(sheetChartData, "A", "B", columnWidth)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
