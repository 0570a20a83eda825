package flightdata

import (
	"context"

	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// RecordSource is the storage collaborator feeding the series core. Errors
// from implementations propagate untouched so the host applies its own
// retry policy.
type RecordSource interface {
	FetchDailyRecords(ctx context.Context, cutoff reporting.DateKey) ([]DailyRecord, error)
	FetchCumulativeRecords(ctx context.Context, cutoff reporting.DateKey) ([]CumulativeRecord, error)
	FetchFailureEvents(ctx context.Context) ([]FailureEvent, error)
}
