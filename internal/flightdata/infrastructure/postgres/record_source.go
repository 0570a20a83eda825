package postgres

import (
	"context"
	"database/sql"
	"log"

	flightdata "github.com/MiserableKnight/VJC-sub000/internal/flightdata/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/observability/metrics"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// RecordSource reads the operational feed tables. The feed stores record
// dates as raw text in whichever format the upstream ledger used that day,
// so every row is keyed through ParseDateKey; malformed rows are skipped
// and logged rather than failing the whole fetch (bulk ingestion policy).
type RecordSource struct {
	db     *sql.DB
	logger *log.Logger
}

// NewRecordSource constructs a RecordSource.
func NewRecordSource(db *sql.DB, logger *log.Logger) *RecordSource {
	return &RecordSource{db: db, logger: logger}
}

// FetchDailyRecords loads daily delta rows dated at or before cutoff.
func (r *RecordSource) FetchDailyRecords(ctx context.Context, cutoff reporting.DateKey) ([]flightdata.DailyRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT
	record_date,
	flight_hours,
	flight_cycles
FROM fleet_daily_records
ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []flightdata.DailyRecord
	for rows.Next() {
		var dateText string
		var hours, cycles sql.NullFloat64
		if err := rows.Scan(&dateText, &hours, &cycles); err != nil {
			return nil, err
		}
		date, err := reporting.ParseDateKey(dateText)
		if err != nil {
			r.skip("daily", dateText, err)
			continue
		}
		if date.After(cutoff) {
			continue
		}
		result = append(result, flightdata.DailyRecord{
			Date:         date,
			FlightHours:  nullableFloat(hours),
			FlightCycles: nullableFloat(cycles),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FetchCumulativeRecords loads running-total rows dated at or before cutoff.
func (r *RecordSource) FetchCumulativeRecords(ctx context.Context, cutoff reporting.DateKey) ([]flightdata.CumulativeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT
	record_date,
	total_hours,
	total_cycles
FROM fleet_cumulative_records
ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []flightdata.CumulativeRecord
	for rows.Next() {
		var dateText string
		var hours, cycles sql.NullFloat64
		if err := rows.Scan(&dateText, &hours, &cycles); err != nil {
			return nil, err
		}
		date, err := reporting.ParseDateKey(dateText)
		if err != nil {
			r.skip("cumulative", dateText, err)
			continue
		}
		if date.After(cutoff) {
			continue
		}
		result = append(result, flightdata.CumulativeRecord{
			Date:             date,
			CumulativeHours:  nullableFloat(hours),
			CumulativeCycles: nullableFloat(cycles),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FetchFailureEvents loads the full failure event history.
func (r *RecordSource) FetchFailureEvents(ctx context.Context) ([]flightdata.FailureEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT
	reported_date,
	severity,
	aircraft_id
FROM fleet_failure_events
ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []flightdata.FailureEvent
	for rows.Next() {
		var dateText, aircraftID string
		var severity int
		if err := rows.Scan(&dateText, &severity, &aircraftID); err != nil {
			return nil, err
		}
		date, err := reporting.ParseDateKey(dateText)
		if err != nil {
			r.skip("failure", dateText, err)
			continue
		}
		result = append(result, flightdata.FailureEvent{
			Date:       date,
			Severity:   severity,
			AircraftID: aircraftID,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *RecordSource) skip(kind, dateText string, err error) {
	metrics.IncRecordSkipped(kind)
	if r.logger != nil {
		r.logger.Printf("record skipped: kind=%s date=%q err=%v", kind, dateText, err)
	}
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}
