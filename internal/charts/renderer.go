package charts

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Alex2003763/Fintracker-sub002/config"
	"github.com/Alex2003763/Fintracker-sub002/internal/domain/report"
	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

// Renderer é a implementação padrão do colaborador de captura: mantém um
// registro de superfícies montadas e as rasteriza em PNG com densidade
// de pixels dobrada para legibilidade em impressão.
type Renderer struct {
	mu       sync.RWMutex
	surfaces map[string][]report.ChartPoint
	scale    int
	width    int
	height   int
}

func NewRenderer(cfg *config.Config) *Renderer {
	scale := cfg.Report.ChartScale
	if scale < 1 {
		scale = 2
	}
	return &Renderer{
		surfaces: make(map[string][]report.ChartPoint),
		scale:    scale,
		width:    cfg.Report.ChartWidth,
		height:   cfg.Report.ChartHeight,
	}
}

// Mount registra uma série sob um identificador estável de superfície.
func (r *Renderer) Mount(id string, series []report.ChartPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[id] = series
}

func (r *Renderer) Unmount(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}

func (r *Renderer) CaptureSurface(ctx context.Context, id string) (*RasterImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	series, mounted := r.surfaces[id]
	r.mu.RUnlock()

	if !mounted {
		return nil, appErrors.ErrSurfaceNotFound.WithDetails(map[string]interface{}{
			"surface": id,
		})
	}
	if len(series) == 0 {
		return nil, appErrors.ErrEmptySurface.WithDetails(map[string]interface{}{
			"surface": id,
		})
	}

	bars := make([]chart.Value, 0, len(series))
	for _, point := range series {
		bars = append(bars, chart.Value{Label: point.Category, Value: point.Amount})
	}

	width := r.width * r.scale
	height := r.height * r.scale
	graph := chart.BarChart{
		Width:    width,
		Height:   height,
		BarWidth: 40 * r.scale,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, appErrors.WrapError(err, "SURFACE_RENDER_FAILED",
			"Falha ao renderizar a superfície de gráfico", http.StatusInternalServerError)
	}

	return &RasterImage{
		Data:   buf.Bytes(),
		Format: "png",
		Width:  width,
		Height: height,
	}, nil
}
