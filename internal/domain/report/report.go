package report

import "time"

// SummaryEntry preserva a ordem de apresentação das métricas do resumo.
type SummaryEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Detail struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type ChartPoint struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ChartImage é um gráfico já capturado como raster, pronto para ser
// incorporado pelos codificadores.
type ChartImage struct {
	Name string `json:"name"`
	PNG  []byte `json:"-"`
}

// Data é a representação intermediária agnóstica de formato. Pertence a
// uma única exportação e é descartada após a codificação.
// Invariante: cada linha do detalhe tem o mesmo comprimento dos headers.
type Data struct {
	Summary     []SummaryEntry `json:"summary"`
	Detail      Detail         `json:"detail"`
	ChartSeries []ChartPoint   `json:"chartSeries"`
	Charts      []ChartImage   `json:"-"`
}

// Metadata acompanha todo documento codificado.
type Metadata struct {
	Title       string    `json:"title"`
	PeriodLabel string    `json:"periodLabel"`
	GeneratedAt time.Time `json:"generatedAt"`
	RecordCount int       `json:"recordCount"`
}
