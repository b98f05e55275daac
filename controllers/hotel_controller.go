package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"hotel-booking-api/dto"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Service *services.HotelService
}

func NewHotelController(service *services.HotelService) *HotelController {
	return &HotelController{Service: service}
}

// Search handles GET /api/hotels?name= with case-insensitive partial match.
func (hc *HotelController) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "validation", "Query parameter 'name' is required.")
		return
	}

	hotels, err := hc.Service.Search(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("Found %d hotel(s).", len(hotels))
	if len(hotels) == 0 {
		message = fmt.Sprintf("No hotels found matching '%s'.", name)
	}

	c.JSON(http.StatusOK, dto.HotelSearchResult{Hotels: hotels, Message: message})
}
