package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotel-booking-api/dto"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminService owns the development/test data lifecycle: full reset and the
// deterministic seed dataset.
type AdminService struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewAdminService(db *gorm.DB, cache *redis.Client) *AdminService {
	return &AdminService{DB: db, Cache: cache}
}

// Reset deletes all data, children before parents.
func (s *AdminService) Reset(ctx context.Context) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM booking_nights",
			"DELETE FROM bookings",
			"DELETE FROM rooms",
			"DELETE FROM hotels",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	s.invalidateSearchCache(ctx)
	return nil
}

// Seed creates the deterministic dataset used by manual and automated
// testing. It is idempotent: once any hotel exists it is a no-op and
// returns all-zero counts.
func (s *AdminService) Seed(ctx context.Context) (dto.SeedResult, error) {
	var hotelCount int64
	if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return dto.SeedResult{}, fmt.Errorf("seed precheck failed: %w", err)
	}
	if hotelCount > 0 {
		return dto.SeedResult{}, nil
	}

	var result dto.SeedResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hotels := []models.Hotel{
			{Name: "The Savoy Hotel London"},
			{Name: "Grand Central Hotel Glasgow"},
			{Name: "The Balmoral Hotel Edinburgh"},
		}
		if err := tx.Create(&hotels).Error; err != nil {
			return err
		}

		var rooms []models.Room
		for _, h := range hotels {
			rooms = append(rooms, sixRooms(h.ID)...)
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		// Two deterministic bookings against the first hotel: room #1 for
		// 2026-01-10..2026-01-12 and room #4 for 2026-01-15..2026-01-18.
		first := hotels[0]
		bookings := []models.Booking{
			seedBooking("BK-000001", first.ID, roomByNumber(rooms, first.ID, 1), "2026-01-10", "2026-01-12", 1),
			seedBooking("BK-000002", first.ID, roomByNumber(rooms, first.ID, 4), "2026-01-15", "2026-01-18", 2),
		}
		if err := tx.Create(&bookings).Error; err != nil {
			return err
		}

		var nights []models.BookingNight
		for _, b := range bookings {
			for _, night := range nightsInclusive(time.Time(b.StartDate), time.Time(b.EndDate)) {
				nights = append(nights, models.BookingNight{
					BookingID: b.ID,
					RoomID:    b.RoomID,
					Night:     datatypes.Date(night),
				})
			}
		}
		if err := tx.Create(&nights).Error; err != nil {
			return err
		}

		result = dto.SeedResult{
			Hotels:        len(hotels),
			Rooms:         len(rooms),
			Bookings:      len(bookings),
			BookingNights: len(nights),
		}
		return nil
	})
	if err != nil {
		return dto.SeedResult{}, fmt.Errorf("seed failed: %w", err)
	}

	s.invalidateSearchCache(ctx)
	return result, nil
}

func (s *AdminService) invalidateSearchCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := BumpSearchCacheVersion(ctx, s.Cache); err != nil {
		log.Printf("warning: failed to invalidate search cache: %v", err)
	}
}

// sixRooms is the fixed per-hotel topology: room numbers 1..6 across the
// three room types with deterministic capacities.
func sixRooms(hotelID uint) []models.Room {
	return []models.Room{
		{HotelID: hotelID, RoomNumber: 1, RoomType: models.RoomTypeSingle, Capacity: 1},
		{HotelID: hotelID, RoomNumber: 2, RoomType: models.RoomTypeSingle, Capacity: 1},
		{HotelID: hotelID, RoomNumber: 3, RoomType: models.RoomTypeDouble, Capacity: 2},
		{HotelID: hotelID, RoomNumber: 4, RoomType: models.RoomTypeDouble, Capacity: 2},
		{HotelID: hotelID, RoomNumber: 5, RoomType: models.RoomTypeDeluxe, Capacity: 4},
		{HotelID: hotelID, RoomNumber: 6, RoomType: models.RoomTypeDeluxe, Capacity: 4},
	}
}

func seedBooking(reference string, hotelID, roomID uint, from, to string, guests int) models.Booking {
	fromDate, _ := utils.ParseDate(from)
	toDate, _ := utils.ParseDate(to)
	return models.Booking{
		Reference: reference,
		HotelID:   hotelID,
		RoomID:    roomID,
		StartDate: datatypes.Date(fromDate),
		EndDate:   datatypes.Date(toDate),
		Guests:    guests,
	}
}

func roomByNumber(rooms []models.Room, hotelID uint, number int) uint {
	for _, r := range rooms {
		if r.HotelID == hotelID && r.RoomNumber == number {
			return r.ID
		}
	}
	return 0
}
