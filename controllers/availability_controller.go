package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotel-booking-api/dto"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Service *services.AvailabilityService
}

func NewAvailabilityController(service *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Service: service}
}

// Get handles GET /api/hotels/:hotelId/availability?from=&to=&guests=.
// The date range is inclusive on both ends.
func (ac *AvailabilityController) Get(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 32)
	if err != nil || hotelID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "validation", "'hotelId' must be a positive integer.")
		return
	}

	from, to, guests, vErr := parseAvailabilityParams(c)
	if vErr != "" {
		utils.JSONError(c, http.StatusBadRequest, "validation", vErr)
		return
	}

	rooms, err := ac.Service.AvailableRooms(c.Request.Context(), uint(hotelID), from, to, guests)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("Found %d available room(s).", len(rooms))
	if len(rooms) == 0 {
		message = "No rooms available for the given dates and guest count."
	}

	c.JSON(http.StatusOK, dto.AvailabilityResult{
		HotelID:        uint(hotelID),
		From:           utils.FormatDate(from),
		To:             utils.FormatDate(to),
		Guests:         guests,
		AvailableRooms: rooms,
		Message:        message,
	})
}

func parseAvailabilityParams(c *gin.Context) (from, to time.Time, guests int, errMsg string) {
	fromRaw := strings.TrimSpace(c.Query("from"))
	toRaw := strings.TrimSpace(c.Query("to"))
	guestsRaw := strings.TrimSpace(c.Query("guests"))

	if fromRaw == "" {
		return from, to, 0, "Query parameter 'from' is required (yyyy-MM-dd)."
	}
	if toRaw == "" {
		return from, to, 0, "Query parameter 'to' is required (yyyy-MM-dd)."
	}
	if guestsRaw == "" {
		return from, to, 0, "Query parameter 'guests' is required."
	}

	var err error
	if from, err = utils.ParseDate(fromRaw); err != nil {
		return from, to, 0, "'from' must be a valid yyyy-MM-dd date."
	}
	if to, err = utils.ParseDate(toRaw); err != nil {
		return from, to, 0, "'to' must be a valid yyyy-MM-dd date."
	}
	if guests, err = strconv.Atoi(guestsRaw); err != nil {
		return from, to, 0, "'guests' must be an integer."
	}

	if guests < 1 {
		return from, to, 0, "'guests' must be at least 1."
	}
	if to.Before(from) {
		return from, to, 0, "'to' must be on or after 'from'."
	}
	if from.Before(utils.Today()) {
		return from, to, 0, "The 'from' date must be today or a future date."
	}
	return from, to, guests, ""
}
