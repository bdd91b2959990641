package request_models

type TeamSplitInput struct {
	MusicianID  string `json:"musician_id" binding:"required,uuid4"`
	AmountMinor int64  `json:"amount_minor" binding:"required,min=0"`
}

type CreateShowRequest struct {
	Title      string           `json:"title" binding:"required,min=1,max=200"`
	ArtistID   *string          `json:"artist_id"`
	VenueID    *string          `json:"venue_id"`
	Date       int64            `json:"date" binding:"required"`
	FeeMinor   int64            `json:"fee_minor" binding:"min=0"`
	Currency   string           `json:"currency"`
	Notes      string           `json:"notes"`
	TeamSplits []TeamSplitInput `json:"team_splits"`
}

type UpdateShowRequest struct {
	Title      *string          `json:"title"`
	ArtistID   *string          `json:"artist_id"`
	VenueID    *string          `json:"venue_id"`
	Date       *int64           `json:"date"`
	FeeMinor   *int64           `json:"fee_minor"`
	Currency   *string          `json:"currency"`
	Status     *string          `json:"status"`
	Notes      *string          `json:"notes"`
	TeamSplits []TeamSplitInput `json:"team_splits"`
}

type CreateExpenseRequest struct {
	ShowID      *string `json:"show_id"`
	Kind        string  `json:"kind" binding:"required,oneof=fuel flight rental tolls other"`
	Description string  `json:"description"`
	AmountMinor int64   `json:"amount_minor" binding:"required,min=1"`
	Currency    string  `json:"currency"`
	Date        int64   `json:"date" binding:"required"`
}
