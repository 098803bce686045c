package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Alex2003763/Fintracker-sub002/internal/errors"
)

// ExportGuard permite uma única exportação em voo por chamador. Uma
// nova exportação não cancela nada em andamento; invocações duplicadas
// enquanto uma exportação roda são recusadas na borda HTTP.
type ExportGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewExportGuard() *ExportGuard {
	return &ExportGuard{
		inFlight: make(map[string]struct{}),
	}
}

func (g *ExportGuard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

func (g *ExportGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}

func GuardExports(guard *ExportGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !guard.Acquire(key) {
			appErr := appErrors.ErrExportInProgress
			c.JSON(appErr.StatusCode, gin.H{
				"error":   appErr.Code,
				"message": appErr.Message,
			})
			c.Abort()
			return
		}
		defer guard.Release(key)

		c.Next()
	}
}
