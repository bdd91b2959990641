package db_models

import "github.com/google/uuid"

type ReferralCode struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Code      string    `gorm:"uniqueIndex"`
	MaxUses   int32     `gorm:"default:0"` // 0 = unlimited
	UseCount  int32     `gorm:"default:0"`
}

// Referral records one redemption of a code. The same row is owned by
// the referrer; ReferredAccountID points at the account that redeemed.
type Referral struct {
	BaseModel
	AccountID         uuid.UUID `gorm:"type:uuid;index"` // referrer
	ReferredAccountID uuid.UUID `gorm:"type:uuid;index"`
	ReferralCodeID    uuid.UUID `gorm:"type:uuid;index"`
	RewardDays        int32     `gorm:"default:0"`
}
