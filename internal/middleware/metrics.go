package middleware

import (
	"net/http"
	"strconv"
	"time"

	"dachshund-registry/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics registra contador y duración por request. Usa el patrón de
// ruta de chi como label para no explotar la cardinalidad con ids.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}

			m.Requests.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
			m.Duration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
