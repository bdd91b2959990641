package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "gigwise/internal/models/db_models"
)

// revenueStatuses are the show states that count toward earnings.
var revenueStatuses = []string{
	string(dbm.ShowStatusPlayed),
	string(dbm.ShowStatusPaid),
}

type DashboardRepository interface {
	CountShowsByStatus(ctx context.Context, accountID uuid.UUID, start, end time.Time, status dbm.ShowStatus) (int64, error)
	CountShows(ctx context.Context, accountID uuid.UUID, start, end time.Time) (int64, error)
	SumFees(ctx context.Context, accountID uuid.UUID, start, end time.Time) (int64, error)
	SumExpenses(ctx context.Context, accountID uuid.UUID, start, end time.Time) (int64, error)

	EarningsSeries(ctx context.Context, accountID uuid.UUID, start, end time.Time, interval, tz string) ([]BucketSum, error)
	ExpenseSeries(ctx context.Context, accountID uuid.UUID, start, end time.Time, interval, tz string) ([]BucketSum, error)

	TopVenues(ctx context.Context, accountID uuid.UUID, start, end time.Time, limit int) ([]VenueRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type VenueRow struct {
	VenueID   string `gorm:"column:venue_id"`
	VenueName string `gorm:"column:venue_name"`
	Shows     int64  `gorm:"column:shows"`
	FeesMinor int64  `gorm:"column:fees_minor"`
}

// dateTrunc buckets a UNIX-seconds column in the requested timezone.
// The bind args are returned alongside the expression so placeholders
// and args always line up, with or without a timezone.
// Example: date_trunc('week', timezone('Europe/Lisbon', to_timestamp(date)))
func dateTrunc(interval, tz, unixColumn string) (string, []interface{}) {
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))", []interface{}{interval}
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))", []interface{}{interval, tz}
}

// ---------- Counts ----------
func (r *dashboardRepository) CountShowsByStatus(ctx context.Context, accountID uuid.UUID, start, end time.Time, status dbm.ShowStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Show{}).
		Where("account_id = ?", accountID).
		Where("date BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountShows(ctx context.Context, accountID uuid.UUID, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Show{}).
		Where("account_id = ?", accountID).
		Where("date BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumFees(ctx context.Context, accountID uuid.UUID, start, end time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(fee_minor), 0)
			FROM shows
			WHERE account_id = ?
			  AND deleted_at IS NULL
			  AND date BETWEEN ? AND ?
			  AND status = ANY(?)`,
			accountID, start.Unix(), end.Unix(), pq.Array(revenueStatuses)).
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) SumExpenses(ctx context.Context, accountID uuid.UUID, start, end time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(amount_minor), 0)
			FROM locomotion_expenses
			WHERE account_id = ?
			  AND deleted_at IS NULL
			  AND date BETWEEN ? AND ?`,
			accountID, start.Unix(), end.Unix()).
		Scan(&sum).Error
	return sum, err
}

// ---------- Series ----------
func (r *dashboardRepository) EarningsSeries(ctx context.Context, accountID uuid.UUID, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	truncExpr, truncArgs := dateTrunc(interval, tz, "date")
	err := r.db.WithContext(ctx).
		Table("shows").
		Select(truncExpr+" AS bucket, SUM(fee_minor) AS sum", truncArgs...).
		Where("account_id = ?", accountID).
		Where("date BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("status = ANY(?)", pq.Array(revenueStatuses)).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) ExpenseSeries(ctx context.Context, accountID uuid.UUID, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	truncExpr, truncArgs := dateTrunc(interval, tz, "date")
	err := r.db.WithContext(ctx).
		Table("locomotion_expenses").
		Select(truncExpr+" AS bucket, SUM(amount_minor) AS sum", truncArgs...).
		Where("account_id = ?", accountID).
		Where("date BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

// ---------- Top venues ----------
func (r *dashboardRepository) TopVenues(ctx context.Context, accountID uuid.UUID, start, end time.Time, limit int) ([]VenueRow, error) {
	var rows []VenueRow
	err := r.db.WithContext(ctx).
		Table("shows s").
		Select(`
			s.venue_id,
			v.name AS venue_name,
			COUNT(*) AS shows,
			SUM(s.fee_minor) AS fees_minor`).
		Joins("JOIN venues v ON v.id = s.venue_id").
		Where("s.account_id = ?", accountID).
		Where("s.venue_id IS NOT NULL").
		Where("s.date BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("s.venue_id, v.name").
		Order("fees_minor DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
