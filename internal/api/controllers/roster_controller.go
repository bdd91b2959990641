package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigwise/internal/models/request_models"
	"gigwise/internal/services"
	"gigwise/pkg/utils"
)

type RosterController struct {
	rosterService services.RosterServiceInterface
}

func NewRosterController(rosterService services.RosterServiceInterface) *RosterController {
	return &RosterController{rosterService: rosterService}
}

// CreateArtist godoc
// @Summary Add an artist or band to the caller's roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body request_models.CreateArtistRequest true "Artist payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /roster/artists [post]
func (r *RosterController) CreateArtist(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	artist, err := r.rosterService.CreateArtist(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, artist, "Artist created successfully")
}

// ListArtists godoc
// @Summary List the caller's artists
// @Tags Roster
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /roster/artists [get]
func (r *RosterController) ListArtists(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	artists, err := r.rosterService.ListArtists(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, artists, "Artists fetched successfully")
}

// CreateMusician godoc
// @Summary Add a musician to the caller's roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body request_models.CreateMusicianRequest true "Musician payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /roster/musicians [post]
func (r *RosterController) CreateMusician(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateMusicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	musician, err := r.rosterService.CreateMusician(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, musician, "Musician created successfully")
}

// ListMusicians godoc
// @Summary List the caller's musicians
// @Tags Roster
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /roster/musicians [get]
func (r *RosterController) ListMusicians(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	musicians, err := r.rosterService.ListMusicians(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, musicians, "Musicians fetched successfully")
}

// CreateVenue godoc
// @Summary Add a venue to the caller's roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param request body request_models.CreateVenueRequest true "Venue payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /roster/venues [post]
func (r *RosterController) CreateVenue(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	venue, err := r.rosterService.CreateVenue(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue created successfully")
}

// ListVenues godoc
// @Summary List the caller's venues
// @Tags Roster
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /roster/venues [get]
func (r *RosterController) ListVenues(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	venues, err := r.rosterService.ListVenues(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Venues fetched successfully")
}
