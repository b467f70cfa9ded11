package routes

import (
	"net/http"

	"github.com/zatekoja/healthpremium/internal/api/handlers"
	"github.com/zatekoja/healthpremium/internal/api/middleware"
	"github.com/zatekoja/healthpremium/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	premiumHandler *handlers.PremiumHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(
	premiumHandler *handlers.PremiumHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		premiumHandler:  premiumHandler,
		cacheMiddleware: cacheMiddleware,
		allowedOrigins:  allowedOrigins,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Premium endpoints
	r.mux.HandleFunc("POST /api/premium/estimate", r.premiumHandler.EstimatePremium)
	r.mux.HandleFunc("GET /api/premium/options", r.premiumHandler.GetOptions)
	r.mux.HandleFunc("GET /api/premium/schema", r.premiumHandler.GetSchema)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	// Logging sits outside the cache so HITs are logged too
	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
