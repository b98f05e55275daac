package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking-api/config"
	"hotel-booking-api/controllers"
	"hotel-booking-api/routes"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"
)

// adminEnabled gates the reset/seed/list endpoints: development and test
// only. Outside those environments the routes are not even registered.
func adminEnabled() bool {
	env := strings.ToLower(utils.EnvOrDefault("APP_ENV", "development"))
	return env == "development" || env == "test"
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established and migrations applied.")

	cache, err := config.ConnectRedis(context.Background())
	if err != nil {
		log.Printf("⚠️  Redis unavailable, search cache disabled: %v", err)
		cache = nil
	} else if cache != nil {
		log.Println("✅ Redis search cache enabled.")
	}

	// Initialize services
	hotelService := services.NewHotelService(db, cache)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db)
	adminService := services.NewAdminService(db, cache)

	if strings.EqualFold(utils.EnvOrDefault("SEED_ON_BOOT", "false"), "true") {
		if result, err := adminService.Seed(context.Background()); err != nil {
			log.Fatalf("❌ Seed failed: %v", err)
		} else {
			log.Printf("✅ Seed done: %+v", result)
		}
	}

	// Initialize controllers
	hotelController := controllers.NewHotelController(hotelService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)
	adminController := controllers.NewAdminController(adminService, bookingService)

	router := routes.SetupRouter(
		hotelController,
		availabilityController,
		bookingController,
		adminController,
		adminEnabled(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
