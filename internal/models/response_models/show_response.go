package response_models

import "gorm.io/datatypes"

type ShowResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	ArtistID   *string        `json:"artist_id,omitempty"`
	VenueID    *string        `json:"venue_id,omitempty"`
	Date       string         `json:"date"` // RFC3339
	FeeMinor   int64          `json:"fee_minor"`
	Currency   string         `json:"currency"`
	Status     string         `json:"status"`
	Notes      string         `json:"notes,omitempty"`
	TeamSplits datatypes.JSON `json:"team_splits"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	ShowID      *string `json:"show_id,omitempty"`
	Kind        string  `json:"kind"`
	Description string  `json:"description,omitempty"`
	AmountMinor int64   `json:"amount_minor"`
	Currency    string  `json:"currency"`
	Date        string  `json:"date"` // RFC3339
}
