package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.LocomotionExpense) error
	FindByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.LocomotionExpense, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.LocomotionExpense, error)
	Delete(ctx context.Context, accountID uuid.UUID, id string) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, expense *db_models.LocomotionExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, accountID uuid.UUID, id string) (*db_models.LocomotionExpense, error) {
	var expense db_models.LocomotionExpense
	err := r.db.WithContext(ctx).
		First(&expense, "id = ? AND account_id = ?", id, accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}

func (r *expenseRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.LocomotionExpense, error) {
	var expenses []db_models.LocomotionExpense
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) Delete(ctx context.Context, accountID uuid.UUID, id string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.LocomotionExpense{}, "id = ? AND account_id = ?", id, accountID).Error
}
