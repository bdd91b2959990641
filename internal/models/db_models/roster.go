package db_models

import "github.com/google/uuid"

// Roster entities: the acts, players and rooms a user books shows against.
// Every row is owned by exactly one Account via AccountID.

type Artist struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Genre     string
	PhotoURL  string
}

type Musician struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Phone     string
	Email     string
	// Default fee used to prefill team splits on new shows, minor units.
	DefaultFeeMinor int64
}

type Venue struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	City      string
	Address   string
	Capacity  int32
	Contact   string
}

// MusicianVenue links a musician to the venues they usually play.
type MusicianVenue struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	MusicianID uuid.UUID `gorm:"type:uuid;index"`
	VenueID    uuid.UUID `gorm:"type:uuid;index"`
}

type MusicianInstrument struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	MusicianID uuid.UUID `gorm:"type:uuid;index"`
	Instrument string
}
