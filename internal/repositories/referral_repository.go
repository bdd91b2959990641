package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gigwise/internal/models/db_models"
)

type ReferralRepository interface {
	InsertCode(ctx context.Context, code *db_models.ReferralCode) error
	FindCode(ctx context.Context, code string) (*db_models.ReferralCode, error)

	// Redeem records the referral and bumps the code's use counter in
	// one transaction.
	Redeem(ctx context.Context, referral *db_models.Referral) error
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) InsertCode(ctx context.Context, code *db_models.ReferralCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *referralRepository) FindCode(ctx context.Context, code string) (*db_models.ReferralCode, error) {
	var rc db_models.ReferralCode
	err := r.db.WithContext(ctx).First(&rc, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &rc, nil
}

func (r *referralRepository) Redeem(ctx context.Context, referral *db_models.Referral) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(referral).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.ReferralCode{}).
			Where("id = ?", referral.ReferralCodeID).
			Update("use_count", gorm.Expr("use_count + 1")).Error
	})
}
