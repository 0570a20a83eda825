package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MiserableKnight/VJC-sub000/internal/flightdata/application"
	"github.com/MiserableKnight/VJC-sub000/internal/observability/metrics"
)

// SeriesHandler serves the visible metric series and its exports.
type SeriesHandler struct {
	service *application.SeriesService
}

// NewSeriesHandler constructs a handler.
func NewSeriesHandler(service *application.SeriesService) (*SeriesHandler, error) {
	if service == nil {
		return nil, errors.New("series handler: nil service")
	}
	return &SeriesHandler{service: service}, nil
}

// ServeHTTP handles routes under /api/v1/series.
func (h *SeriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h == nil || h.service == nil {
		http.Error(w, "server not ready", http.StatusServiceUnavailable)
		return
	}

	path := r.URL.Path
	switch {
	case path == "/api/v1/series":
		h.handleJSON(w, r)
	case strings.HasPrefix(path, "/api/v1/series/export."):
		h.handleExport(w, r, strings.TrimPrefix(path, "/api/v1/series/export."))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *SeriesHandler) handleJSON(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	now, err := parseAsOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	series, err := h.service.VisibleSeries(r.Context(), now)
	if err != nil {
		metrics.ObserveSeriesQuery(metrics.ResultError, time.Since(start))
		http.Error(w, "series query error", http.StatusInternalServerError)
		return
	}
	metrics.ObserveSeriesQuery(metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(series)
}

func (h *SeriesHandler) handleExport(w http.ResponseWriter, r *http.Request, format string) {
	start := time.Now()
	now, err := parseAsOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	series, err := h.service.VisibleSeries(r.Context(), now)
	if err != nil {
		metrics.ObserveSeriesExport(format, metrics.ResultError, time.Since(start))
		http.Error(w, "series query error", http.StatusInternalServerError)
		return
	}

	var payload []byte
	var contentType string
	switch format {
	case "csv":
		payload, err = BuildSeriesCSV(series)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		payload, err = BuildSeriesXLSX(series)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		payload, err = BuildSeriesPDF(series)
		contentType = "application/pdf"
	default:
		http.Error(w, "format must be csv, xlsx or pdf", http.StatusBadRequest)
		return
	}
	if err != nil {
		metrics.ObserveSeriesExport(format, metrics.ResultError, time.Since(start))
		http.Error(w, "series export error", http.StatusInternalServerError)
		return
	}
	metrics.ObserveSeriesExport(format, metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="series.`+format+`"`)
	_, _ = w.Write(payload)
}

// parseAsOf reads the optional as_of override; zero means "use the clock".
func parseAsOf(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get("as_of")
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.New("as_of must be RFC3339")
	}
	return parsed.UTC(), nil
}
