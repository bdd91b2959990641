package response_models

import (
	"time"

	"github.com/google/uuid"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	// Timezone used for bucketing (defaults to UTC if empty)
	Timezone string `json:"timezone,omitempty"`
}

type EarningsKPIBlock struct {
	TotalShows     int64 `json:"total_shows"`
	PlayedShows    int64 `json:"played_shows"`
	PaidShows      int64 `json:"paid_shows"`
	CanceledShows  int64 `json:"canceled_shows"`
	GrossFeesMinor int64 `json:"gross_fees_minor"`
	ExpensesMinor  int64 `json:"expenses_minor"`
	NetMinor       int64 `json:"net_minor"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type EarningsSeries struct {
	Currency   string        `json:"currency"`
	Points     []SeriesPoint `json:"points"`
	TotalMinor int64         `json:"total_minor"`
}

type TopVenue struct {
	VenueID   uuid.UUID `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Shows     int64     `json:"shows"`
	FeesMinor int64     `json:"fees_minor"`
}

type EarningsReport struct {
	Range     TimeRange        `json:"range"`
	KPIs      EarningsKPIBlock `json:"kpis"`
	Earnings  EarningsSeries   `json:"earnings"`
	Expenses  EarningsSeries   `json:"expenses"`
	TopVenues []TopVenue       `json:"top_venues"`
}
