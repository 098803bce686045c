package charts

import "context"

// RasterImage é o resultado da captura de uma superfície de gráfico:
// buffer de pixels já codificado mais o formato da codificação.
type RasterImage struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Capturer é a fronteira com a camada de renderização visual. A captura
// pode suspender enquanto a superfície pinta; deve ser invocada somente
// depois que o exportador confirma que a superfície está montada. Falhas
// são tratadas por item: um gráfico quebrado é omitido do documento, a
// exportação segue.
type Capturer interface {
	CaptureSurface(ctx context.Context, id string) (*RasterImage, error)
}
