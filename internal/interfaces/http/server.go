package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	httpContracts "github.com/sawpanic/defiboard/internal/http"
	"github.com/sawpanic/defiboard/internal/interfaces/http/handlers"
	"github.com/sawpanic/defiboard/internal/net/ratelimit"
)

// Server represents the read-only dashboard HTTP server
type Server struct {
	router   *mux.Router
	server   *http.Server
	handlers *handlers.Handlers
	health   *HealthHandler
	metrics  *MetricsRegistry
	limiter  *ratelimit.Limiter
	config   ServerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Dependencies are the collaborators the server reads from
type Dependencies struct {
	Source   handlers.Source
	Renderer handlers.PageRenderer
	Version  string
	Options  handlers.Options
}

// Route names, used as metric labels
const (
	RoutePage      = "page"
	RouteDashboard = "api_dashboard"
	RouteRisk      = "api_risk"
	RouteLending   = "api_lending"
	RoutePortfolio = "api_portfolio"
	RouteYield     = "api_yield"
	RouteMarket    = "api_market"
	RouteHealth    = "health"
	RouteMetrics   = "metrics"
)

// NewServer creates a new HTTP server instance
func NewServer(config ServerConfig, deps Dependencies) *Server {
	metrics := NewMetricsRegistry()
	metrics.SetDatasetRecords(RecordCounts(deps.Source))

	s := &Server{
		router:   mux.NewRouter(),
		handlers: handlers.NewHandlers(deps.Source, deps.Renderer, metrics, deps.Options),
		health:   NewHealthHandler(deps.Source, metrics, deps.Version),
		metrics:  metrics,
		config:   config,
	}
	if config.RateLimitEnabled {
		s.limiter = ratelimit.NewLimiter(config.RateLimitRPS, config.RateLimitBurst)
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.rateLimitMiddleware)
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.timeoutMiddleware)
	s.router.Use(s.corsMiddleware)

	s.router.HandleFunc("/", s.handlers.Page).Methods(http.MethodGet).Name(RoutePage)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard", s.handlers.Dashboard).Methods(http.MethodGet).Name(RouteDashboard)
	api.HandleFunc("/risk", s.handlers.RiskMetrics).Methods(http.MethodGet).Name(RouteRisk)
	api.HandleFunc("/lending", s.handlers.Lending).Methods(http.MethodGet).Name(RouteLending)
	api.HandleFunc("/portfolio", s.handlers.Portfolio).Methods(http.MethodGet).Name(RoutePortfolio)
	api.HandleFunc("/yield", s.handlers.Yield).Methods(http.MethodGet).Name(RouteYield)
	api.HandleFunc("/market", s.handlers.Market).Methods(http.MethodGet).Name(RouteMarket)

	s.router.Handle("/health", s.health).Methods(http.MethodGet).Name(RouteHealth)
	s.router.Handle("/metrics", s.metrics.MetricsHandler()).Methods(http.MethodGet).Name(RouteMetrics)

	s.router.NotFoundHandler = s.requestIDMiddleware(http.HandlerFunc(s.handlers.NotFound))
	s.router.MethodNotAllowedHandler = s.requestIDMiddleware(http.HandlerFunc(s.handlers.MethodNotAllowed))
}

// requestIDMiddleware adds unique request ID to each request
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(handlers.WithRequestID(r.Context(), requestID)))
	})
}

// requestLoggingMiddleware logs all requests with structured format
func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		log.Info().
			Str("request_id", handlers.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("REQ")
	})
}

// rateLimitMiddleware rejects clients that exceed their token bucket
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow(clientKey(r)) {
			s.metrics.RateLimited.Inc()
			w.Header().Set("Retry-After", "1")
			handlers.WriteError(w, r, http.StatusTooManyRequests, httpContracts.CodeRateLimited,
				"Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// metricsMiddleware records duration and status per named route
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil && current.GetName() != "" {
			route = current.GetName()
		}
		s.metrics.ObserveRequest(route, r.Method, wrapper.statusCode, time.Since(start))
	})
}

// timeoutMiddleware enforces request timeouts
func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.RequestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), s.config.RequestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware adds CORS headers for local development
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only allow localhost origins
		origin := r.Header.Get("Origin")
		if strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller for rate limiting
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's metrics registry
func (s *Server) Metrics() *MetricsRegistry {
	return s.metrics
}

// Run listens and serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("port %d is busy or unavailable: %w", s.config.Port, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s.limiter != nil {
		go s.limiter.Run(ctx, time.Minute, 10*time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("Starting dashboard HTTP server (read-only)")
		errCh <- s.server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Addr returns the server address
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// responseWrapper captures HTTP status codes for logging
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
