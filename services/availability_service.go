package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking-api/dto"
	"hotel-booking-api/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AvailabilityService answers read-only room availability queries.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// AvailableRooms returns the rooms of a hotel that hold at least guests
// people and have no booking overlapping [from..to] inclusive, ordered by
// ascending capacity then ascending room number.
//
// A booking overlaps the range iff start_date <= to AND end_date >= from;
// the per-night decomposition is equivalent for this query, so it runs
// against the booking ranges directly.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, hotelID uint, from, to time.Time, guests int) ([]dto.RoomAvailability, error) {
	var hotelCount int64
	if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).
		Where("id = ?", hotelID).
		Count(&hotelCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check hotel %d: %w", hotelID, err)
	}
	if hotelCount == 0 {
		return nil, failNotFound(fmt.Sprintf("No hotel exists with id '%d'.", hotelID))
	}

	var rooms []dto.RoomAvailability
	err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Select("id AS room_id", "room_number", "room_type", "capacity").
		Where("hotel_id = ?", hotelID).
		Where("capacity >= ?", guests).
		Where("NOT EXISTS (SELECT 1 FROM bookings b WHERE b.room_id = rooms.id AND b.start_date <= ? AND b.end_date >= ?)",
			datatypes.Date(to), datatypes.Date(from)).
		Order("capacity ASC, room_number ASC").
		Scan(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	if rooms == nil {
		rooms = []dto.RoomAvailability{}
	}
	return rooms, nil
}
