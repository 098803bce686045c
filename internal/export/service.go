package export

import (
	"context"

	"github.com/Alex2003763/Fintracker-sub002/config"
	"github.com/Alex2003763/Fintracker-sub002/internal/charts"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/budget"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/goal"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/transaction"
	"github.com/Alex2003763/Fintracker-sub002/internal/encoder"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
	"github.com/Alex2003763/Fintracker-sub002/internal/logger"
)

// Service conduz uma exportação de ponta a ponta: valida a configuração,
// monta os dados, captura os gráficos tolerando falhas individuais,
// invoca o codificador selecionado e entrega o binário com o nome de
// arquivo gerado.
type Service struct {
	Charts         charts.Capturer
	Product        string
	DefaultSurface string
}

func NewService(cfg *config.Config, capturer charts.Capturer) *Service {
	return &Service{
		Charts:         capturer,
		Product:        cfg.Report.ProductName,
		DefaultSurface: cfg.Report.DefaultChartSurface,
	}
}

type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export não tenta de novo em caso de falha: gráficos parcialmente
// renderizados podem diferir entre tentativas, então a reinvocação é uma
// decisão explícita do usuário.
func (s *Service) Export(ctx context.Context, cfg report.Configuration, transactions []transaction.Record, budgets []budget.Record, goals []goal.Record) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, meta, err := report.Assemble(cfg, transactions, budgets, goals)
	if err != nil {
		return nil, err
	}

	if cfg.IncludeCharts {
		s.captureCharts(ctx, cfg, data)
	}

	enc := encoder.ForFormat(s.Product, cfg.Format)
	document, err := enc.Encode(cfg, data, meta)
	if err != nil {
		return nil, appErrors.NewEncodingError(string(cfg.Format), err)
	}

	result := &Result{
		Filename:    cfg.Filename(meta.GeneratedAt),
		ContentType: cfg.Format.ContentType(),
		Data:        document,
	}

	logger.Info().
		Str("reportType", string(cfg.ReportType)).
		Str("filename", result.Filename).
		Int("bytes", len(result.Data)).
		Int("records", meta.RecordCount).
		Msg("Relatório exportado")

	return result, nil
}

// captureCharts captura cada superfície referenciada; uma captura que
// falha é registrada e omitida sem derrubar a exportação.
func (s *Service) captureCharts(ctx context.Context, cfg report.Configuration, data *report.Data) {
	if s.Charts == nil {
		return
	}

	surfaces := cfg.ChartSurfaceIds
	if len(surfaces) == 0 {
		surfaces = []string{s.DefaultSurface}
	}

	for _, id := range surfaces {
		image, err := s.Charts.CaptureSurface(ctx, id)
		if err != nil {
			logger.Warn().
				Str("surface", id).
				Err(err).
				Msg("Captura de gráfico falhou; gráfico omitido do documento")
			continue
		}
		data.Charts = append(data.Charts, report.ChartImage{Name: id, PNG: image.Data})
	}
}
