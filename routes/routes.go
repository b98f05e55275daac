package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-api/controllers"
	"hotel-booking-api/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all endpoints. Admin routes are only registered when
// adminEnabled is true; otherwise they answer 404 like any unknown path,
// hiding their existence outside development/test.
func SetupRouter(
	hc *controllers.HotelController,
	ac *controllers.AvailabilityController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
	adminEnabled bool,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.Search)
			hotels.GET("/:hotelId/availability", ac.Get)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.Create)
			bookings.GET("/:reference", bc.GetByReference)
		}

		if adminEnabled {
			admin := api.Group("/admin")
			{
				admin.POST("/reset", adc.Reset)
				admin.POST("/seed", adc.Seed)
				admin.GET("/bookings", adc.ListBookings)
			}
		}
	}

	return r
}
