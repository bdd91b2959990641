package request_models

type CreateArtistRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	Genre    string `json:"genre"`
	PhotoURL string `json:"photo_url"`
}

type CreateMusicianRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=120"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	DefaultFeeMinor int64    `json:"default_fee_minor" binding:"min=0"`
	Instruments     []string `json:"instruments"`
	VenueIDs        []string `json:"venue_ids"`
}

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Capacity int32  `json:"capacity" binding:"min=0"`
	Contact  string `json:"contact"`
}
