package services

import (
	"context"

	"github.com/google/uuid"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/request_models"
	"gigwise/internal/repositories"
	"gigwise/pkg/utils"
)

type SupportServiceInterface interface {
	CreateTicket(ctx context.Context, accountID uuid.UUID, request request_models.CreateTicketRequest) (*db_models.SupportTicket, error)
	GetTicket(ctx context.Context, accountID uuid.UUID, isStaff bool, ticketID string) (*db_models.SupportTicket, error)
	ListTickets(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.SupportTicket, error)
	AddResponse(ctx context.Context, accountID uuid.UUID, isStaff bool, ticketID string, request request_models.AddResponseRequest) error
}

type SupportService struct {
	supportRepo repositories.SupportRepository
}

func NewSupportService(supportRepo repositories.SupportRepository) SupportServiceInterface {
	return &SupportService{supportRepo: supportRepo}
}

func (s *SupportService) CreateTicket(ctx context.Context, accountID uuid.UUID, request request_models.CreateTicketRequest) (*db_models.SupportTicket, error) {
	ticket := &db_models.SupportTicket{
		AccountID: accountID,
		Subject:   request.Subject,
		Body:      request.Body,
		Status:    db_models.TicketStatusOpen,
	}
	if err := s.supportRepo.InsertTicket(ctx, ticket); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return ticket, nil
}

func (s *SupportService) GetTicket(ctx context.Context, accountID uuid.UUID, isStaff bool, ticketID string) (*db_models.SupportTicket, error) {
	ticket, err := s.supportRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if ticket == nil {
		return nil, utils.ErrTicketNotFound
	}
	// Owners and staff only; everyone else sees a 404, not a 403, so
	// ticket ids are not probeable.
	if !isStaff && ticket.AccountID != accountID {
		return nil, utils.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *SupportService) ListTickets(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.SupportTicket, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	tickets, err := s.supportRepo.ListTicketsByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tickets, nil
}

func (s *SupportService) AddResponse(ctx context.Context, accountID uuid.UUID, isStaff bool, ticketID string, request request_models.AddResponseRequest) error {
	ticket, err := s.GetTicket(ctx, accountID, isStaff, ticketID)
	if err != nil {
		return err
	}

	response := &db_models.SupportResponse{
		AccountID: accountID,
		TicketID:  ticket.ID,
		Body:      request.Body,
		FromStaff: isStaff,
	}
	if err := s.supportRepo.InsertResponse(ctx, response); err != nil {
		return utils.ErrDatabaseError
	}

	if isStaff && ticket.Status == db_models.TicketStatusOpen {
		if err := s.supportRepo.UpdateTicketStatus(ctx, ticket.ID, db_models.TicketStatusAnswered); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}
