package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sawpanic/defiboard/internal/dashboard"
	"github.com/sawpanic/defiboard/internal/domain/portfolio"
	httpContracts "github.com/sawpanic/defiboard/internal/http"
)

type ctxKey struct{}

// WithRequestID stores the request ID on ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request ID stored on ctx, or "unknown"
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return "unknown"
}

// Source is the record store the handlers read from
type Source interface {
	dashboard.Source
	MarketData() []portfolio.MarketData
}

// PageRenderer writes an HTML dashboard page
type PageRenderer interface {
	Render(w io.Writer, page dashboard.Page) error
}

// RenderObserver is told about each page build
type RenderObserver interface {
	ObserveRender(format string, d time.Duration, err error)
}

// Options configures the handlers
type Options struct {
	Title   string
	Ranking dashboard.Ranking
	Now     func() time.Time
}

// Handlers manages all HTTP endpoint handlers
type Handlers struct {
	source   Source
	renderer PageRenderer
	observer RenderObserver
	opts     Options
}

// NewHandlers creates a new handlers instance. observer may be nil.
func NewHandlers(source Source, renderer PageRenderer, observer RenderObserver, opts Options) *Handlers {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handlers{source: source, renderer: renderer, observer: observer, opts: opts}
}

func (h *Handlers) observe(format string, start time.Time, err error) {
	if h.observer != nil {
		h.observer.ObserveRender(format, time.Since(start), err)
	}
}

// writeJSON writes JSON response with proper error handling
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteError writes standardized error response
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	errorResp := httpContracts.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		RequestID: RequestID(r.Context()),
		Timestamp: time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		log.Error().Err(err).Msg("Failed to encode error response")
	}
}

// NotFound handles 404 responses
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, httpContracts.CodeNotFound,
		"The requested endpoint does not exist")
}

// MethodNotAllowed handles 405 responses
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusMethodNotAllowed, httpContracts.CodeMethodBlocked,
		"Only GET is supported")
}

// ranking resolves the yield ranking from ?ranking=, falling back to the
// configured default. ok is false after an error response was written.
func (h *Handlers) ranking(w http.ResponseWriter, r *http.Request) (dashboard.Ranking, bool) {
	raw := r.URL.Query().Get("ranking")
	if raw == "" {
		return h.opts.Ranking, true
	}
	ranking, err := dashboard.ParseRanking(raw)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, httpContracts.CodeInvalidParam, err.Error())
		return "", false
	}
	return ranking, true
}

func (h *Handlers) buildPage(ranking dashboard.Ranking) dashboard.Page {
	return dashboard.Build(h.source, dashboard.Options{
		Title:   h.opts.Title,
		Ranking: ranking,
		Now:     h.opts.Now,
	})
}
