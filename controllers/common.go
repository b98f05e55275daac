package controllers

import (
	"log"
	"net/http"

	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. Typed failures carry
// their own code; anything else is an unexpected server fault.
func respondError(c *gin.Context, err error) {
	if f, ok := services.AsFailure(err); ok {
		utils.JSONError(c, failureStatus(f), f.Code, f.Message)
		return
	}
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.JSONError(c, http.StatusInternalServerError, "internal", "Unexpected server error.")
}

func failureStatus(f *services.Failure) int {
	switch f.Code {
	case services.CodeNotFound:
		return http.StatusNotFound
	case services.CodeConflict:
		return http.StatusConflict
	default:
		// validation and no_rooms are both caller errors.
		return http.StatusBadRequest
	}
}
