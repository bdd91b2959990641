package db_models

import "github.com/google/uuid"

type ExpenseKind string

const (
	ExpenseKindFuel   ExpenseKind = "fuel"
	ExpenseKindFlight ExpenseKind = "flight"
	ExpenseKindRental ExpenseKind = "rental"
	ExpenseKindTolls  ExpenseKind = "tolls"
	ExpenseKindOther  ExpenseKind = "other"
)

// LocomotionExpense is a transportation cost, optionally tied to a show.
type LocomotionExpense struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index"`
	ShowID    *uuid.UUID `gorm:"type:uuid;index"`

	Kind        ExpenseKind `gorm:"default:other"`
	Description string
	AmountMinor int64
	Currency    string `gorm:"size:3;default:USD"`
	Date        int64  `gorm:"index"`
}
