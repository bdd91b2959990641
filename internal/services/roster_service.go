package services

import (
	"context"

	"github.com/google/uuid"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/request_models"
	"gigwise/internal/repositories"
	"gigwise/pkg/utils"
)

type RosterServiceInterface interface {
	CreateArtist(ctx context.Context, accountID uuid.UUID, request request_models.CreateArtistRequest) (*db_models.Artist, error)
	ListArtists(ctx context.Context, accountID uuid.UUID) ([]db_models.Artist, error)
	CreateMusician(ctx context.Context, accountID uuid.UUID, request request_models.CreateMusicianRequest) (*db_models.Musician, error)
	ListMusicians(ctx context.Context, accountID uuid.UUID) ([]db_models.Musician, error)
	CreateVenue(ctx context.Context, accountID uuid.UUID, request request_models.CreateVenueRequest) (*db_models.Venue, error)
	ListVenues(ctx context.Context, accountID uuid.UUID) ([]db_models.Venue, error)
}

type RosterService struct {
	rosterRepo repositories.RosterRepository
}

func NewRosterService(rosterRepo repositories.RosterRepository) RosterServiceInterface {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) CreateArtist(ctx context.Context, accountID uuid.UUID, request request_models.CreateArtistRequest) (*db_models.Artist, error) {
	artist := &db_models.Artist{
		AccountID: accountID,
		Name:      request.Name,
		Genre:     request.Genre,
		PhotoURL:  request.PhotoURL,
	}
	if err := s.rosterRepo.InsertArtist(ctx, artist); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return artist, nil
}

func (s *RosterService) ListArtists(ctx context.Context, accountID uuid.UUID) ([]db_models.Artist, error) {
	artists, err := s.rosterRepo.ListArtists(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return artists, nil
}

func (s *RosterService) CreateMusician(ctx context.Context, accountID uuid.UUID, request request_models.CreateMusicianRequest) (*db_models.Musician, error) {
	venueIDs := make([]uuid.UUID, 0, len(request.VenueIDs))
	for _, raw := range request.VenueIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		venueIDs = append(venueIDs, id)
	}

	musician := &db_models.Musician{
		AccountID:       accountID,
		Name:            request.Name,
		Phone:           request.Phone,
		Email:           request.Email,
		DefaultFeeMinor: request.DefaultFeeMinor,
	}
	if err := s.rosterRepo.InsertMusician(ctx, musician, request.Instruments, venueIDs); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return musician, nil
}

func (s *RosterService) ListMusicians(ctx context.Context, accountID uuid.UUID) ([]db_models.Musician, error) {
	musicians, err := s.rosterRepo.ListMusicians(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return musicians, nil
}

func (s *RosterService) CreateVenue(ctx context.Context, accountID uuid.UUID, request request_models.CreateVenueRequest) (*db_models.Venue, error) {
	venue := &db_models.Venue{
		AccountID: accountID,
		Name:      request.Name,
		City:      request.City,
		Address:   request.Address,
		Capacity:  request.Capacity,
		Contact:   request.Contact,
	}
	if err := s.rosterRepo.InsertVenue(ctx, venue); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return venue, nil
}

func (s *RosterService) ListVenues(ctx context.Context, accountID uuid.UUID) ([]db_models.Venue, error) {
	venues, err := s.rosterRepo.ListVenues(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return venues, nil
}
