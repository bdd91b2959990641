package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

type RosterRepository interface {
	InsertArtist(ctx context.Context, artist *db_models.Artist) error
	ListArtists(ctx context.Context, accountID uuid.UUID) ([]db_models.Artist, error)

	// InsertMusician writes the musician plus instrument and venue link
	// rows in one transaction.
	InsertMusician(ctx context.Context, musician *db_models.Musician, instruments []string, venueIDs []uuid.UUID) error
	ListMusicians(ctx context.Context, accountID uuid.UUID) ([]db_models.Musician, error)

	InsertVenue(ctx context.Context, venue *db_models.Venue) error
	ListVenues(ctx context.Context, accountID uuid.UUID) ([]db_models.Venue, error)
}

type rosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) InsertArtist(ctx context.Context, artist *db_models.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *rosterRepository) ListArtists(ctx context.Context, accountID uuid.UUID) ([]db_models.Artist, error) {
	var artists []db_models.Artist
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&artists).Error
	return artists, err
}

func (r *rosterRepository) InsertMusician(ctx context.Context, musician *db_models.Musician, instruments []string, venueIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(musician).Error; err != nil {
			return err
		}
		for _, instrument := range instruments {
			link := db_models.MusicianInstrument{
				AccountID:  musician.AccountID,
				MusicianID: musician.ID,
				Instrument: instrument,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		for _, venueID := range venueIDs {
			link := db_models.MusicianVenue{
				AccountID:  musician.AccountID,
				MusicianID: musician.ID,
				VenueID:    venueID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *rosterRepository) ListMusicians(ctx context.Context, accountID uuid.UUID) ([]db_models.Musician, error) {
	var musicians []db_models.Musician
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&musicians).Error
	return musicians, err
}

func (r *rosterRepository) InsertVenue(ctx context.Context, venue *db_models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *rosterRepository) ListVenues(ctx context.Context, accountID uuid.UUID) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&venues).Error
	return venues, err
}
