package controllers

import (
	"net/http"

	"hotel-booking-api/dto"
	"hotel-booking-api/services"

	"github.com/gin-gonic/gin"
)

// AdminController exposes the non-production data lifecycle endpoints.
// Routing only registers it when the environment allows admin access.
type AdminController struct {
	Admin    *services.AdminService
	Bookings *services.BookingService
}

func NewAdminController(admin *services.AdminService, bookings *services.BookingService) *AdminController {
	return &AdminController{Admin: admin, Bookings: bookings}
}

// Reset handles POST /api/admin/reset: wipe all data.
func (adc *AdminController) Reset(c *gin.Context) {
	if err := adc.Admin.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database reset complete."})
}

// Seed handles POST /api/admin/seed: idempotent deterministic dataset.
func (adc *AdminController) Seed(c *gin.Context) {
	result, err := adc.Admin.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Database seeded successfully."
	if result == (dto.SeedResult{}) {
		message = "Database already seeded (no changes made)."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "result": result})
}

// ListBookings handles GET /api/admin/bookings.
func (adc *AdminController) ListBookings(c *gin.Context) {
	items, err := adc.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
