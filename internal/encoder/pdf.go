package encoder

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
)

// Espaço vertical mínimo antes de um gráfico; com menos que isso o
// gráfico vai para a página seguinte, já que a razão de aspecto é fixa.
const chartBandHeightMM = 90.0

const chartWidthMM = 150.0

type PDFEncoder struct {
	Product string
}

func (e *PDFEncoder) Encode(cfg report.Configuration, data *report.Data, meta *report.Metadata) ([]byte, error) {
	state := &encodeState{}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)

	// Estratégia de rodapé em duas fases: o conteúdo é todo diagramado
	// primeiro e o total de páginas só é substituído no fechamento.
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 7, e.Product, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 5, meta.Title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 4, "Period: "+meta.PeriodLabel, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 4, "Generated: "+meta.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	state.advance(stageLayingOut)

	if cfg.IncludeSummary && len(data.Summary) > 0 {
		e.writeSummary(pdf, data.Summary)
	}

	if cfg.IncludeCharts && len(data.Charts) > 0 {
		state.advance(stageEmbeddingCharts)
		e.embedCharts(pdf, data.Charts)
	}

	if cfg.IncludeDetails {
		e.writeDetail(pdf, data.Detail)
	}

	state.advance(stageFinalizing)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, state.fail(err)
	}

	state.advance(stageDone)
	return buf.Bytes(), nil
}

func (e *PDFEncoder) writeSummary(pdf *gofpdf.Fpdf, summary []report.SummaryEntry) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")

	for _, entry := range summary {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(70, 6, entry.Name, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(50, 6, entry.Value, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}

func (e *PDFEncoder) embedCharts(pdf *gofpdf.Fpdf, charts []report.ChartImage) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	for i, image := range charts {
		if len(image.PNG) == 0 {
			continue
		}
		if remainingHeight(pdf) < chartBandHeightMM {
			pdf.AddPage()
		}

		name := fmt.Sprintf("chart-%d-%s", i, image.Name)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(image.PNG))
		pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), chartWidthMM, 0, true, opts, 0, "")
		pdf.Ln(5)
	}
}

func (e *PDFEncoder) writeDetail(pdf *gofpdf.Fpdf, detail report.Detail) {
	if len(detail.Headers) == 0 {
		return
	}

	const rowHeight = 6.0
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(detail.Headers))

	writeHeaderRow := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		for _, header := range detail.Headers {
			pdf.CellFormat(colWidth, rowHeight, header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Details", "", 1, "L", false, 0, "")
	writeHeaderRow()

	if len(detail.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(colWidth*float64(len(detail.Headers)), rowHeight,
			"No records in the selected period", "1", 1, "C", false, 0, "")
		return
	}

	for _, row := range detail.Rows {
		// Quebra manual para repetir o cabeçalho na página de continuação.
		if remainingHeight(pdf) < rowHeight*2 {
			pdf.AddPage()
			writeHeaderRow()
		}
		for i, cell := range row {
			align := "L"
			font := ""
			if i == len(row)-1 {
				align = "R"
				font = "B"
			}
			pdf.SetFont("Helvetica", font, 9)
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func remainingHeight(pdf *gofpdf.Fpdf) float64 {
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	return pageHeight - bottom - pdf.GetY()
}
