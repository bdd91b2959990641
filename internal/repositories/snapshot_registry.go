package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

// SnapshotTable is one entry of the archive registry: it knows how to
// collect every row a user owns in one table and how to replay those
// rows under a new owner. Delete and restore both iterate the same
// registry, so adding an owned table means adding one entry here.
type SnapshotTable struct {
	Name    string
	Collect func(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]json.RawMessage, error)
	Replay  func(ctx context.Context, db *gorm.DB, rows []json.RawMessage, newAccountID uuid.UUID) (int, error)
}

// snapshotTable builds a registry entry for a gorm model T owned through
// owningColumn. reown must reset the row's identity (BaseModel) and point
// its owning column at the new account; embedded references to other
// regenerated rows are deliberately left untouched.
func snapshotTable[T any](name, owningColumn string, reown func(*T, uuid.UUID)) SnapshotTable {
	return SnapshotTable{
		Name: name,
		Collect: func(ctx context.Context, db *gorm.DB, accountID uuid.UUID) ([]json.RawMessage, error) {
			var rows []T
			err := db.WithContext(ctx).
				Where(owningColumn+" = ?", accountID).
				Order("created_at ASC").
				Find(&rows).Error
			if err != nil {
				return nil, fmt.Errorf("collect %s: %w", name, err)
			}

			out := make([]json.RawMessage, 0, len(rows))
			for i := range rows {
				raw, err := json.Marshal(rows[i])
				if err != nil {
					return nil, fmt.Errorf("marshal %s row: %w", name, err)
				}
				out = append(out, raw)
			}
			return out, nil
		},
		Replay: func(ctx context.Context, db *gorm.DB, rows []json.RawMessage, newAccountID uuid.UUID) (int, error) {
			inserted := 0
			for _, raw := range rows {
				var row T
				if err := json.Unmarshal(raw, &row); err != nil {
					return inserted, fmt.Errorf("unmarshal %s row: %w", name, err)
				}
				reown(&row, newAccountID)
				if err := db.WithContext(ctx).Create(&row).Error; err != nil {
					return inserted, fmt.Errorf("replay %s row: %w", name, err)
				}
				inserted++
			}
			return inserted, nil
		},
	}
}

// DefaultSnapshotRegistry lists every domain table captured into a
// deleted-user archive. Referrals appear twice: once as referrer, once
// as referred, matching the two roles a user can hold in that table.
func DefaultSnapshotRegistry() []SnapshotTable {
	return []SnapshotTable{
		snapshotTable("artists", "account_id", func(r *db_models.Artist, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("musicians", "account_id", func(r *db_models.Musician, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("venues", "account_id", func(r *db_models.Venue, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("musician_venues", "account_id", func(r *db_models.MusicianVenue, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("musician_instruments", "account_id", func(r *db_models.MusicianInstrument, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("shows", "account_id", func(r *db_models.Show, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("locomotion_expenses", "account_id", func(r *db_models.LocomotionExpense, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("subscriptions", "account_id", func(r *db_models.Subscription, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("referral_codes", "account_id", func(r *db_models.ReferralCode, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("referrals_as_referrer", "account_id", func(r *db_models.Referral, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
		snapshotTable("referrals_as_referred", "referred_account_id", func(r *db_models.Referral, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.ReferredAccountID = id
		}),
		snapshotTable("support_tickets", "account_id", func(r *db_models.SupportTicket, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.Responses = nil
			r.AccountID = id
		}),
		snapshotTable("support_responses", "account_id", func(r *db_models.SupportResponse, id uuid.UUID) {
			r.BaseModel = db_models.BaseModel{}
			r.AccountID = id
		}),
	}
}
