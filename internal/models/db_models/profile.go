package db_models

import "github.com/google/uuid"

type PlanType string

const (
	PlanTypeFree PlanType = "free"
	PlanTypePro  PlanType = "pro"
)

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusTrialing PlanStatus = "trialing"
	PlanStatusExpired  PlanStatus = "expired"
)

// Profile is 1:1 with Account and is created in the same transaction
// as the Account row (see AccountRepository.Insert).
type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	Name              string
	Phone             string
	TaxID             string
	BirthDate         *int64
	PhotoURL          string
	PlanType          PlanType   `gorm:"default:free"`
	PlanStatus        PlanStatus `gorm:"default:active"`
	Timezone          string     `gorm:"default:UTC"`
	Gender            string
	NotificationToken string
}
