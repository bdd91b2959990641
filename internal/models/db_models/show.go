package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ShowStatus string

const (
	ShowStatusPending   ShowStatus = "pending"
	ShowStatusConfirmed ShowStatus = "confirmed"
	ShowStatusPlayed    ShowStatus = "played"
	ShowStatusPaid      ShowStatus = "paid"
	ShowStatusCanceled  ShowStatus = "canceled"
)

type Show struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index"`
	ArtistID  *uuid.UUID `gorm:"type:uuid;index"`
	VenueID   *uuid.UUID `gorm:"type:uuid;index"`

	Title    string
	Date     int64      `gorm:"index"` // unix seconds
	FeeMinor int64      // gross fee, minor units
	Currency string     `gorm:"size:3;default:USD"`
	Status   ShowStatus `gorm:"default:pending;index"`
	Notes    string

	// Per-musician cost splits: [{"musicianId": "...", "amountMinor": 5000}, ...].
	// Embedded ids are snapshots of the musician rows at edit time and are not
	// remapped when a deleted account is restored.
	TeamSplits datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
