package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

type SupportRepository interface {
	InsertTicket(ctx context.Context, ticket *db_models.SupportTicket) error
	FindTicketByID(ctx context.Context, id string) (*db_models.SupportTicket, error)
	ListTicketsByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.SupportTicket, error)
	InsertResponse(ctx context.Context, response *db_models.SupportResponse) error
	UpdateTicketStatus(ctx context.Context, id uuid.UUID, status db_models.TicketStatus) error
}

type supportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

func (r *supportRepository) InsertTicket(ctx context.Context, ticket *db_models.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *supportRepository) FindTicketByID(ctx context.Context, id string) (*db_models.SupportTicket, error) {
	var ticket db_models.SupportTicket
	err := r.db.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&ticket, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *supportRepository) ListTicketsByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.SupportTicket, error) {
	var tickets []db_models.SupportTicket
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *supportRepository) InsertResponse(ctx context.Context, response *db_models.SupportResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *supportRepository) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status db_models.TicketStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SupportTicket{}).
		Where("id = ?", id).
		Update("status", status).Error
}
