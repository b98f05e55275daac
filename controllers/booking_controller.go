package controllers

import (
	"net/http"
	"strings"

	"hotel-booking-api/dto"
	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

// Create handles POST /api/bookings: allocate one room for the whole
// inclusive range or report exactly one failure kind.
func (bc *BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", "Invalid request payload.")
		return
	}

	from, err := utils.ParseDate(strings.TrimSpace(req.From))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", "'from' must be a valid yyyy-MM-dd date.")
		return
	}
	to, err := utils.ParseDate(strings.TrimSpace(req.To))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", "'to' must be a valid yyyy-MM-dd date.")
		return
	}

	var roomType *models.RoomType
	if req.RoomType != nil && strings.TrimSpace(*req.RoomType) != "" {
		rt, ok := models.ParseRoomType(*req.RoomType)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "validation", "'roomType' must be one of Single, Double, Deluxe.")
			return
		}
		roomType = &rt
	}

	created, err := bc.Service.Create(c.Request.Context(), services.CreateBookingInput{
		HotelID:  req.HotelID,
		From:     from,
		To:       to,
		Guests:   req.Guests,
		RoomType: roomType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+created.BookingReference)
	c.JSON(http.StatusCreated, created)
}

// GetByReference handles GET /api/bookings/:reference.
func (bc *BookingController) GetByReference(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))

	details, err := bc.Service.GetByReference(c.Request.Context(), reference)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
