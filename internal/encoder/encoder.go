package encoder

import (
	"fmt"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
)

// DocumentEncoder transforma a representação intermediária em um
// documento binário. Não existe sucesso parcial: qualquer falha descarta
// o documento em progresso e nada é devolvido ao chamador.
type DocumentEncoder interface {
	Encode(cfg report.Configuration, data *report.Data, meta *report.Metadata) ([]byte, error)
}

// ForFormat seleciona o codificador do formato pedido. Formato não
// suportado degrada para o codificador de texto delimitado em vez de
// falhar: todo tipo de relatório se reduz a linhas tabulares.
func ForFormat(product string, format report.Format) DocumentEncoder {
	switch format {
	case report.FormatPDF:
		return &PDFEncoder{Product: product}
	case report.FormatSpreadsheet:
		return &SpreadsheetEncoder{Product: product}
	default:
		return &DelimitedTextEncoder{}
	}
}

type stage int

const (
	stageNotStarted stage = iota
	stageLayingOut
	stageEmbeddingCharts
	stageFinalizing
	stageDone
)

func (s stage) String() string {
	switch s {
	case stageLayingOut:
		return "laying out"
	case stageEmbeddingCharts:
		return "embedding charts"
	case stageFinalizing:
		return "finalizing"
	case stageDone:
		return "done"
	default:
		return "not started"
	}
}

// encodeState acompanha a fase corrente de uma codificação para que uma
// falha reporte em que estágio o documento foi descartado.
type encodeState struct {
	current stage
}

func (s *encodeState) advance(next stage) {
	s.current = next
}

func (s *encodeState) fail(err error) error {
	return fmt.Errorf("document discarded while %s: %w", s.current, err)
}
