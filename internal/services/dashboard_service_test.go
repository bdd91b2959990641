package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	dbm "gigwise/internal/models/db_models"
	resp "gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
)

type fakeDashboardRepo struct {
	countByStatus map[dbm.ShowStatus]int64
	totalShows    int64
	fees          int64
	expenses      int64
	earningsRows  []repositories.BucketSum
	expenseRows   []repositories.BucketSum
	venues        []repositories.VenueRow
}

func (f *fakeDashboardRepo) CountShowsByStatus(_ context.Context, _ uuid.UUID, _, _ time.Time, status dbm.ShowStatus) (int64, error) {
	return f.countByStatus[status], nil
}

func (f *fakeDashboardRepo) CountShows(_ context.Context, _ uuid.UUID, _, _ time.Time) (int64, error) {
	return f.totalShows, nil
}

func (f *fakeDashboardRepo) SumFees(_ context.Context, _ uuid.UUID, _, _ time.Time) (int64, error) {
	return f.fees, nil
}

func (f *fakeDashboardRepo) SumExpenses(_ context.Context, _ uuid.UUID, _, _ time.Time) (int64, error) {
	return f.expenses, nil
}

func (f *fakeDashboardRepo) EarningsSeries(_ context.Context, _ uuid.UUID, _, _ time.Time, _, _ string) ([]repositories.BucketSum, error) {
	return f.earningsRows, nil
}

func (f *fakeDashboardRepo) ExpenseSeries(_ context.Context, _ uuid.UUID, _, _ time.Time, _, _ string) ([]repositories.BucketSum, error) {
	return f.expenseRows, nil
}

func (f *fakeDashboardRepo) TopVenues(_ context.Context, _ uuid.UUID, _, _ time.Time, _ int) ([]repositories.VenueRow, error) {
	return f.venues, nil
}

func TestNormalizeRangeDefaults(t *testing.T) {
	rng := normalizeRange(resp.TimeRange{})
	if rng.Interval != "day" {
		t.Errorf("interval = %s, want day", rng.Interval)
	}
	if rng.End.IsZero() || rng.Start.IsZero() {
		t.Fatal("defaults not filled in")
	}
	if got := rng.End.Sub(rng.Start); got < 29*24*time.Hour || got > 31*24*time.Hour {
		t.Errorf("default window = %v, want about 30 days", got)
	}
}

func TestNormalizeRangeSwapsInvertedBounds(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rng := normalizeRange(resp.TimeRange{Start: start, End: end, Interval: "week"})
	if rng.Start.After(rng.End) {
		t.Error("inverted bounds not swapped")
	}
}

func TestBuildEarningsReport(t *testing.T) {
	bucket := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	venueID := uuid.New()
	repo := &fakeDashboardRepo{
		totalShows: 10,
		countByStatus: map[dbm.ShowStatus]int64{
			dbm.ShowStatusPlayed:   4,
			dbm.ShowStatusPaid:     3,
			dbm.ShowStatusCanceled: 1,
		},
		fees:     250000,
		expenses: 40000,
		earningsRows: []repositories.BucketSum{
			{Bucket: bucket, Sum: 150000},
			{Bucket: bucket.AddDate(0, 0, 1), Sum: 100000},
		},
		venues: []repositories.VenueRow{
			{VenueID: venueID.String(), VenueName: "Blue Room", Shows: 5, FeesMinor: 200000},
			{VenueID: "garbage", VenueName: "skipped", Shows: 1, FeesMinor: 1},
		},
	}
	svc := NewDashboardService(repo)

	report, err := svc.BuildEarningsReport(context.Background(), uuid.New(), resp.TimeRange{}, "BRL")
	if err != nil {
		t.Fatalf("BuildEarningsReport: %v", err)
	}

	if report.KPIs.NetMinor != 210000 {
		t.Errorf("net = %d, want 210000", report.KPIs.NetMinor)
	}
	if report.Earnings.TotalMinor != 250000 {
		t.Errorf("earnings total = %d, want 250000", report.Earnings.TotalMinor)
	}
	if report.Earnings.Currency != "BRL" {
		t.Errorf("currency = %s, want BRL", report.Earnings.Currency)
	}
	if len(report.Earnings.Points) != 2 {
		t.Errorf("points = %d, want 2", len(report.Earnings.Points))
	}

	// Rows with a malformed venue id are dropped, not fatal.
	if len(report.TopVenues) != 1 {
		t.Fatalf("top venues = %d, want 1", len(report.TopVenues))
	}
	if report.TopVenues[0].VenueID != venueID {
		t.Error("venue id mangled")
	}
}
