package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/request_models"
	"gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
	"gigwise/pkg/utils"
)

type ShowServiceInterface interface {
	CreateShow(ctx context.Context, accountID uuid.UUID, request request_models.CreateShowRequest) (*response_models.ShowResponse, error)
	GetShow(ctx context.Context, accountID uuid.UUID, showID string) (*response_models.ShowResponse, error)
	ListShows(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.ShowResponse, error)
	UpdateShow(ctx context.Context, accountID uuid.UUID, showID string, request request_models.UpdateShowRequest) error
	DeleteShow(ctx context.Context, accountID uuid.UUID, showID string) error
}

type ShowService struct {
	showRepo repositories.ShowRepository
}

func NewShowService(showRepo repositories.ShowRepository) ShowServiceInterface {
	return &ShowService{showRepo: showRepo}
}

func (s *ShowService) CreateShow(ctx context.Context, accountID uuid.UUID, request request_models.CreateShowRequest) (*response_models.ShowResponse, error) {
	show := &db_models.Show{
		AccountID: accountID,
		Title:     request.Title,
		Date:      request.Date,
		FeeMinor:  request.FeeMinor,
		Currency:  currencyOrDefault(request.Currency),
		Status:    db_models.ShowStatusPending,
		Notes:     request.Notes,
	}

	var err error
	if show.ArtistID, err = parseOptionalUUID(request.ArtistID); err != nil {
		return nil, utils.ErrInvalidInput
	}
	if show.VenueID, err = parseOptionalUUID(request.VenueID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	if len(request.TeamSplits) > 0 {
		raw, err := json.Marshal(request.TeamSplits)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		show.TeamSplits = raw
	}

	if err := s.showRepo.Insert(ctx, show); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildShowResponse(show), nil
}

func (s *ShowService) GetShow(ctx context.Context, accountID uuid.UUID, showID string) (*response_models.ShowResponse, error) {
	show, err := s.showRepo.FindByID(ctx, accountID, showID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if show == nil {
		return nil, utils.ErrShowNotFound
	}
	return buildShowResponse(show), nil
}

func (s *ShowService) ListShows(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.ShowResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	shows, err := s.showRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ShowResponse, 0, len(shows))
	for i := range shows {
		out = append(out, *buildShowResponse(&shows[i]))
	}
	return out, nil
}

func (s *ShowService) UpdateShow(ctx context.Context, accountID uuid.UUID, showID string, request request_models.UpdateShowRequest) error {
	show, err := s.showRepo.FindByID(ctx, accountID, showID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if show == nil {
		return utils.ErrShowNotFound
	}

	if request.Title != nil {
		show.Title = *request.Title
	}
	if request.ArtistID != nil {
		if show.ArtistID, err = parseOptionalUUID(request.ArtistID); err != nil {
			return utils.ErrInvalidInput
		}
	}
	if request.VenueID != nil {
		if show.VenueID, err = parseOptionalUUID(request.VenueID); err != nil {
			return utils.ErrInvalidInput
		}
	}
	if request.Date != nil {
		show.Date = *request.Date
	}
	if request.FeeMinor != nil {
		show.FeeMinor = *request.FeeMinor
	}
	if request.Currency != nil {
		show.Currency = currencyOrDefault(*request.Currency)
	}
	if request.Status != nil {
		if !validShowStatus(*request.Status) {
			return utils.ErrInvalidInput
		}
		show.Status = db_models.ShowStatus(*request.Status)
	}
	if request.Notes != nil {
		show.Notes = *request.Notes
	}
	if request.TeamSplits != nil {
		raw, err := json.Marshal(request.TeamSplits)
		if err != nil {
			return utils.ErrInvalidInput
		}
		show.TeamSplits = raw
	}

	if err := s.showRepo.Save(ctx, show); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ShowService) DeleteShow(ctx context.Context, accountID uuid.UUID, showID string) error {
	show, err := s.showRepo.FindByID(ctx, accountID, showID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if show == nil {
		return utils.ErrShowNotFound
	}
	if err := s.showRepo.Delete(ctx, accountID, showID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ---- helpers ----

func buildShowResponse(show *db_models.Show) *response_models.ShowResponse {
	resp := &response_models.ShowResponse{
		ID:         show.ID.String(),
		Title:      show.Title,
		Date:       utils.FormatRFC3339(utils.FromUnixSeconds(show.Date)),
		FeeMinor:   show.FeeMinor,
		Currency:   show.Currency,
		Status:     string(show.Status),
		Notes:      show.Notes,
		TeamSplits: show.TeamSplits,
	}
	if show.ArtistID != nil {
		id := show.ArtistID.String()
		resp.ArtistID = &id
	}
	if show.VenueID != nil {
		id := show.VenueID.String()
		resp.VenueID = &id
	}
	return resp
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

func validShowStatus(s string) bool {
	switch db_models.ShowStatus(s) {
	case db_models.ShowStatusPending, db_models.ShowStatusConfirmed,
		db_models.ShowStatusPlayed, db_models.ShowStatusPaid, db_models.ShowStatusCanceled:
		return true
	default:
		return false
	}
}
