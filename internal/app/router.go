package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/rbmt-backend/internal/config"
	"github.com/heartmarshall/rbmt-backend/internal/transport/middleware"
	"github.com/heartmarshall/rbmt-backend/internal/transport/rest"
)

// routerDeps groups everything the HTTP router needs.
type routerDeps struct {
	logger    *slog.Logger
	cors      config.CORSConfig
	rateLimit config.RateLimitConfig
	limiter   *middleware.RateLimiter // nil disables limiting
	health    *rest.HealthHandler
	translate *rest.TranslateHandler
}

// newRouter builds the ServeMux and wraps it in the global middleware chain.
// Translation and reload routes are additionally rate-limited per client IP.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	var limit middleware.Middleware
	if d.limiter != nil && d.rateLimit.Enabled() {
		limit = d.limiter.Limit(d.rateLimit.RequestsPerMinute)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(limit)(h)
	}

	mux.Handle("POST /reload", limited(d.translate.Reload))
	mux.Handle("POST /translate", limited(d.translate.Translate))
	mux.Handle("POST /translate/batch", limited(d.translate.TranslateBatch))

	return middleware.Chain(
		middleware.Recovery(d.logger),
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.CORS(d.cors),
	)(mux)
}
