package services

import (
	"fmt"
	"strings"
	"testing"

	"hotel-booking-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the real schema,
// including the unique indexes the allocator relies on. A single
// connection keeps concurrent transactions serialized the way a real
// server serializes commits.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.BookingNight{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestHotel creates one hotel with the standard six-room topology.
func newTestHotel(t *testing.T, db *gorm.DB, name string) (models.Hotel, []models.Room) {
	t.Helper()

	hotel := models.Hotel{Name: name}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	rooms := sixRooms(hotel.ID)
	if err := db.Create(&rooms).Error; err != nil {
		t.Fatalf("create rooms: %v", err)
	}
	return hotel, rooms
}

func wantFailureCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s failure, got nil error", code)
	}
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected %s failure, got %v", code, err)
	}
	if f.Code != code {
		t.Fatalf("expected failure code %s, got %s (%s)", code, f.Code, f.Message)
	}
}
