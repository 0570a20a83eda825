package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	seriesapp "github.com/MiserableKnight/VJC-sub000/internal/flightdata/application"
	flightpostgres "github.com/MiserableKnight/VJC-sub000/internal/flightdata/infrastructure/postgres"
	flighthttp "github.com/MiserableKnight/VJC-sub000/internal/flightdata/interfaces/http"
	livetrackapp "github.com/MiserableKnight/VJC-sub000/internal/livetrack/application"
	livetrackhttp "github.com/MiserableKnight/VJC-sub000/internal/livetrack/interfaces/http"
	"github.com/MiserableKnight/VJC-sub000/internal/observability/metrics"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init()
	clock := reporting.SystemClock{}

	liveCfg, err := livetrackapp.LoadConfig()
	if err != nil {
		logger.Fatalf("livetrack config error: %v", err)
	}
	scheduler, err := liveCfg.Scheduler()
	if err != nil {
		logger.Fatalf("livetrack scheduler error: %v", err)
	}

	recordSource := flightpostgres.NewRecordSource(db, logger)
	seriesService, err := seriesapp.NewSeriesService(recordSource, clock, liveCfg.CutoffHour)
	if err != nil {
		logger.Fatalf("series service error: %v", err)
	}
	seriesHandler, err := flighthttp.NewSeriesHandler(seriesService)
	if err != nil {
		logger.Fatalf("series handler error: %v", err)
	}
	scheduleHandler, err := livetrackhttp.NewScheduleHandler(scheduler, clock)
	if err != nil {
		logger.Fatalf("schedule handler error: %v", err)
	}

	poller := livetrackapp.NewPoller(scheduler, clock, func(ctx context.Context, now time.Time) error {
		_, err := seriesService.VisibleSeries(ctx, now)
		return err
	}, logger)
	go poller.Start(context.Background())
	logger.Printf("live-track poller started: window=%s interval=%s", scheduler.Window(), scheduler.Interval())

	mux := http.NewServeMux()
	mux.Handle("/api/v1/series", seriesHandler)
	mux.Handle("/api/v1/series/", seriesHandler)
	mux.Handle("/api/v1/livetrack/schedule", scheduleHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(mux, logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
