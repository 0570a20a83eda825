package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MiserableKnight/VJC-sub000/internal/flightdata/application"
	flightdata "github.com/MiserableKnight/VJC-sub000/internal/flightdata/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/flightdata/infrastructure/memory"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

func ptr(v float64) *float64 { return &v }

func day(y, m, d int) reporting.DateKey {
	return reporting.DateKey{Year: y, Month: m, Day: d}
}

func newTestHandler(t *testing.T) *SeriesHandler {
	t.Helper()
	source := memory.NewRecordSource()
	source.SeedDaily([]flightdata.DailyRecord{
		{Date: day(2025, 5, 8), FlightHours: ptr(3.2), FlightCycles: ptr(2)},
		{Date: day(2025, 5, 9), FlightHours: ptr(1.1)},
	})
	source.SeedCumulative([]flightdata.CumulativeRecord{
		{Date: day(2025, 5, 8), CumulativeHours: ptr(200)},
	})
	source.SeedFailures([]flightdata.FailureEvent{
		{Date: day(2025, 5, 1), Severity: 2, AircraftID: "VN-A001"},
	})

	// Clock pinned after the cutoff so both days are visible by default.
	clock := fixedClock{at: time.Date(2025, 5, 9, 14, 0, 0, 0, time.UTC)}
	service, err := application.NewSeriesService(source, clock, 21)
	if err != nil {
		t.Fatalf("new series service: %v", err)
	}
	handler, err := NewSeriesHandler(service)
	if err != nil {
		t.Fatalf("new series handler: %v", err)
	}
	return handler
}

func TestSeriesHandlerJSON(t *testing.T) {
	handler := newTestHandler(t)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/series", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: got %d", recorder.Code)
	}
	var series []flightdata.MetricPoint
	if err := json.NewDecoder(recorder.Body).Decode(&series); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[1].CumulativeHours != nil {
		t.Fatalf("absent cumulative field must be omitted, got %+v", series[1])
	}
}

func TestSeriesHandlerAsOfOverride(t *testing.T) {
	handler := newTestHandler(t)

	// 10:00 reporting time on 5/9 = 02:00 UTC: today's row must be hidden.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/series?as_of=2025-05-09T02:00:00Z", nil)
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: got %d", recorder.Code)
	}
	var series []flightdata.MetricPoint
	if err := json.NewDecoder(recorder.Body).Decode(&series); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(series) != 1 || series[0].Date != day(2025, 5, 8) {
		t.Fatalf("before cutoff only 5/8 should be visible: %+v", series)
	}
}

func TestSeriesHandlerBadAsOf(t *testing.T) {
	handler := newTestHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/series?as_of=yesterday", nil))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", recorder.Code)
	}
}

func TestSeriesHandlerMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/series", nil))
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d", recorder.Code)
	}
}

func TestSeriesHandlerCSVExport(t *testing.T) {
	handler := newTestHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/series/export.csv", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("content type: got %q", got)
	}
	body := recorder.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	// 5/9 has no cumulative data: empty cells, not zeros.
	if !strings.Contains(lines[2], "2025-05-09,1.1,,,,") {
		t.Fatalf("absent fields must be empty cells: %q", lines[2])
	}
}

func TestSeriesHandlerUnknownExportFormat(t *testing.T) {
	handler := newTestHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/series/export.docx", nil))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", recorder.Code)
	}
}

func TestSeriesHandlerXLSXAndPDFExports(t *testing.T) {
	handler := newTestHandler(t)

	for _, format := range []string{"xlsx", "pdf"} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/series/export."+format, nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("%s status: got %d", format, recorder.Code)
		}
		if recorder.Body.Len() == 0 {
			t.Fatalf("%s export produced no payload", format)
		}
	}
}
