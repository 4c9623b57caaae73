package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	httpContracts "github.com/sawpanic/defiboard/internal/http"
)

// Page handles GET / with the HTML dashboard
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	ranking, ok := h.ranking(w, r)
	if !ok {
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err := h.renderer.Render(&buf, h.buildPage(ranking))
	h.observe("html", start, err)
	if err != nil {
		log.Error().Err(err).Str("request_id", RequestID(r.Context())).Msg("Dashboard render failed")
		WriteError(w, r, http.StatusInternalServerError, httpContracts.CodeRenderFailed,
			"The dashboard could not be rendered")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug().Err(err).Msg("Client went away during page write")
	}
}

// Dashboard handles GET /api/dashboard with the page view model
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ranking, ok := h.ranking(w, r)
	if !ok {
		return
	}

	start := time.Now()
	page := h.buildPage(ranking)
	h.observe("json", start, nil)
	h.writeJSON(w, http.StatusOK, page)
}
