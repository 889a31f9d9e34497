package api

import (
	"context"
	"net/http"
	"time"

	"github.com/lox-space/lox-go/internal/eop"
	"github.com/lox-space/lox-go/internal/metrics"
)

const fetchTimeout = 90 * time.Second

type eopMetadataResponse struct {
	Source     string  `json:"source"`
	FetchedAt  string  `json:"fetched_at"`
	AgeSeconds float64 `json:"age_seconds"`
	FirstMJD   float64 `json:"first_mjd"`
	LastMJD    float64 `json:"last_mjd"`
	Rows       int     `json:"rows"`
}

func metadata(ds *eop.Dataset) eopMetadataResponse {
	return eopMetadataResponse{
		Source:     ds.Source,
		FetchedAt:  ds.FetchedAt.UTC().Format(time.RFC3339),
		AgeSeconds: time.Since(ds.FetchedAt).Seconds(),
		FirstMJD:   ds.Range.First,
		LastMJD:    ds.Range.Last,
		Rows:       ds.Rows,
	}
}

// eopMetadata handles GET /api/v1/eop/metadata.
func (h *handlers) eopMetadata(w http.ResponseWriter, r *http.Request) {
	if h.deps.EOP == nil {
		writeError(w, http.StatusServiceUnavailable, "no EOP dataset loaded")
		return
	}
	ds := h.deps.EOP.Get()
	if ds == nil {
		writeError(w, http.StatusServiceUnavailable, "no EOP dataset loaded")
		return
	}
	writeJSON(w, http.StatusOK, metadata(ds))
}

// eopFetch handles POST /api/v1/eop/fetch.
func (h *handlers) eopFetch(w http.ResponseWriter, r *http.Request) {
	if h.deps.Refresher == nil {
		writeError(w, http.StatusConflict, "EOP fetching is disabled")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()

	ds, err := h.deps.Refresher.Refresh(ctx)
	metrics.RecordEOPFetch(err)
	if err != nil {
		h.logger.Warn("EOP fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	metrics.SetEOPAge(0)
	writeJSON(w, http.StatusOK, metadata(ds))
}
