package encoder

import (
	"strings"

	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
)

// DelimitedTextEncoder é o fallback mais degradado: uma tabela plana,
// cabeçalho na primeira linha e uma linha por registro do detalhe.
//
// Não há aspas nem escape de delimitadores embutidos. Limitação
// documentada: os tipos de relatório atuais só roteiam colunas de
// número, data e rótulo por aqui; texto livre com vírgula quebraria as
// colunas silenciosamente.
type DelimitedTextEncoder struct{}

func (e *DelimitedTextEncoder) Encode(cfg report.Configuration, data *report.Data, meta *report.Metadata) ([]byte, error) {
	state := &encodeState{}
	state.advance(stageLayingOut)

	var b strings.Builder
	b.WriteString(strings.Join(data.Detail.Headers, ","))
	b.WriteString("\n")
	for _, row := range data.Detail.Rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	state.advance(stageDone)
	return []byte(b.String()), nil
}
