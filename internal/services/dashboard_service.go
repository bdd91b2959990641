package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "gigwise/internal/models/db_models"
	resp "gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
)

type DashboardService interface {
	BuildEarningsReport(ctx context.Context, accountID uuid.UUID, rng resp.TimeRange, currency string) (*resp.EarningsReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30)
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildEarningsReport(ctx context.Context, accountID uuid.UUID, rng resp.TimeRange, currency string) (*resp.EarningsReport, error) {
	rng = normalizeRange(rng)

	totalShows, err := s.repo.CountShows(ctx, accountID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	playedShows, err := s.repo.CountShowsByStatus(ctx, accountID, rng.Start, rng.End, dbm.ShowStatusPlayed)
	if err != nil {
		return nil, err
	}
	paidShows, err := s.repo.CountShowsByStatus(ctx, accountID, rng.Start, rng.End, dbm.ShowStatusPaid)
	if err != nil {
		return nil, err
	}
	canceledShows, err := s.repo.CountShowsByStatus(ctx, accountID, rng.Start, rng.End, dbm.ShowStatusCanceled)
	if err != nil {
		return nil, err
	}

	grossFees, err := s.repo.SumFees(ctx, accountID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.SumExpenses(ctx, accountID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	earningsRows, err := s.repo.EarningsSeries(ctx, accountID, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, err
	}
	expenseRows, err := s.repo.ExpenseSeries(ctx, accountID, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, err
	}

	venueRows, err := s.repo.TopVenues(ctx, accountID, rng.Start, rng.End, 5)
	if err != nil {
		return nil, err
	}

	topVenues := make([]resp.TopVenue, 0, len(venueRows))
	for _, v := range venueRows {
		venueID, err := uuid.Parse(v.VenueID)
		if err != nil {
			continue
		}
		topVenues = append(topVenues, resp.TopVenue{
			VenueID:   venueID,
			VenueName: v.VenueName,
			Shows:     v.Shows,
			FeesMinor: v.FeesMinor,
		})
	}

	return &resp.EarningsReport{
		Range: rng,
		KPIs: resp.EarningsKPIBlock{
			TotalShows:     totalShows,
			PlayedShows:    playedShows,
			PaidShows:      paidShows,
			CanceledShows:  canceledShows,
			GrossFeesMinor: grossFees,
			ExpensesMinor:  expenses,
			NetMinor:       grossFees - expenses,
		},
		Earnings:  buildSeries(earningsRows, currency),
		Expenses:  buildSeries(expenseRows, currency),
		TopVenues: topVenues,
	}, nil
}

func buildSeries(rows []repositories.BucketSum, currency string) resp.EarningsSeries {
	out := resp.EarningsSeries{Currency: currency}
	for _, r := range rows {
		out.Points = append(out.Points, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
		out.TotalMinor += r.Sum
	}
	return out
}
