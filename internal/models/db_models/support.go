package db_models

import "github.com/google/uuid"

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusAnswered TicketStatus = "answered"
	TicketStatusClosed   TicketStatus = "closed"
)

type SupportTicket struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Subject   string
	Body      string       `gorm:"type:text"`
	Status    TicketStatus `gorm:"default:open;index"`

	Responses []SupportResponse `gorm:"foreignKey:TicketID"`
}

type SupportResponse struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"` // author (user or admin)
	TicketID  uuid.UUID `gorm:"type:uuid;index"`
	Body      string    `gorm:"type:text"`
	FromStaff bool      `gorm:"default:false"`
}
