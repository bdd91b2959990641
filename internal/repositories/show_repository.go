package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

type ShowRepository interface {
	Insert(ctx context.Context, show *db_models.Show) error
	FindByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.Show, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Show, error)
	Save(ctx context.Context, show *db_models.Show) error
	Delete(ctx context.Context, accountID uuid.UUID, id string) error
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Insert(ctx context.Context, show *db_models.Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *showRepository) FindByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.Show, error) {
	var show db_models.Show
	err := r.db.WithContext(ctx).
		First(&show, "id = ? AND account_id = ?", id, accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &show, nil
}

func (r *showRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Show, error) {
	var shows []db_models.Show
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("date DESC").
		Find(&shows).Error
	return shows, err
}

func (r *showRepository) Save(ctx context.Context, show *db_models.Show) error {
	return r.db.WithContext(ctx).Save(show).Error
}

func (r *showRepository) Delete(ctx context.Context, accountID uuid.UUID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Show{}, "id = ? AND account_id = ?", id, accountID).Error
}
