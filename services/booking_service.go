package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-booking-api/dto"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB and owns the room allocation logic.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput is the validated-by-Create allocation request.
// RoomType is an optional candidate filter.
type CreateBookingInput struct {
	HotelID  uint
	From     time.Time
	To       time.Time
	Guests   int
	RoomType *models.RoomType
}

// candidateRoom is the projection the allocator works on.
type candidateRoom struct {
	ID         uint
	RoomNumber int
	RoomType   models.RoomType
	Capacity   int
}

// Create attempts to allocate exactly one room for every night in
// [From..To] inclusive.
//
// Candidates are ordered smallest sufficient capacity first, then lowest
// room number, and tried one at a time. Each attempt inserts the Booking
// row plus one BookingNight row per night in a single transaction; the
// unique index on (room_id, night) is the only conflict detection. A
// uniqueness violation means a concurrent booking claimed at least one of
// the nights, so the attempt is rolled back and the next candidate is
// tried. Any other storage error aborts the whole operation.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*dto.BookingCreated, error) {
	if in.HotelID == 0 {
		return nil, failValidation("'hotelId' must be a positive integer.")
	}
	if in.Guests < 1 {
		return nil, failValidation("'guests' must be at least 1.")
	}
	if in.To.Before(in.From) {
		return nil, failValidation("'to' must be on or after 'from'.")
	}
	if in.From.Before(utils.Today()) {
		return nil, failValidation("'from' must be today or a future date.")
	}

	var hotelCount int64
	if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).
		Where("id = ?", in.HotelID).
		Count(&hotelCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check hotel %d: %w", in.HotelID, err)
	}
	if hotelCount == 0 {
		return nil, failNotFound(fmt.Sprintf("No hotel exists with id '%d'.", in.HotelID))
	}

	candidates, err := s.candidateRooms(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, failNoRooms("No rooms match the guest count (and optional room type).")
	}

	for _, room := range candidates {
		booking := models.Booking{
			Reference: utils.NewBookingReference(),
			HotelID:   in.HotelID,
			RoomID:    room.ID,
			StartDate: datatypes.Date(in.From),
			EndDate:   datatypes.Date(in.To),
			Guests:    in.Guests,
		}

		txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}

			nights := nightsInclusive(in.From, in.To)
			rows := make([]models.BookingNight, 0, len(nights))
			for _, night := range nights {
				rows = append(rows, models.BookingNight{
					BookingID: booking.ID,
					RoomID:    room.ID,
					Night:     datatypes.Date(night),
				})
			}
			return tx.Create(&rows).Error
		})

		if txErr == nil {
			// First successful candidate wins.
			return &dto.BookingCreated{
				BookingReference: booking.Reference,
				HotelID:          in.HotelID,
				RoomID:           room.ID,
				RoomNumber:       room.RoomNumber,
				RoomType:         room.RoomType,
				Capacity:         room.Capacity,
				From:             utils.FormatDate(in.From),
				To:               utils.FormatDate(in.To),
				Guests:           in.Guests,
			}, nil
		}

		if isDuplicateErr(txErr) {
			// At least one night of this room is already claimed.
			log.Printf("room %d unavailable for %s..%s, trying next candidate",
				room.ID, utils.FormatDate(in.From), utils.FormatDate(in.To))
			continue
		}

		return nil, fmt.Errorf("booking allocation failed for room %d: %w", room.ID, txErr)
	}

	return nil, failConflict("No rooms are available for the full requested date range.")
}

// candidateRooms lists rooms eligible for the request, best-fit first:
// ascending capacity, ties broken by ascending room number.
func (s *BookingService) candidateRooms(ctx context.Context, in CreateBookingInput) ([]candidateRoom, error) {
	q := s.DB.WithContext(ctx).Model(&models.Room{}).
		Select("id", "room_number", "room_type", "capacity").
		Where("hotel_id = ?", in.HotelID).
		Where("capacity >= ?", in.Guests)

	if in.RoomType != nil {
		q = q.Where("room_type = ?", *in.RoomType)
	}

	var candidates []candidateRoom
	if err := q.Order("capacity ASC, room_number ASC").Scan(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidate rooms: %w", err)
	}
	return candidates, nil
}

// GetByReference loads a booking with its hotel and room details.
func (s *BookingService) GetByReference(ctx context.Context, reference string) (*dto.BookingDetails, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Preload("Room").
		Where("reference = ?", reference).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, failNotFound(fmt.Sprintf("No booking exists with reference '%s'.", reference))
		}
		return nil, fmt.Errorf("failed to load booking %q: %w", reference, err)
	}

	return &dto.BookingDetails{
		BookingReference: booking.Reference,
		HotelID:          booking.HotelID,
		HotelName:        booking.Hotel.Name,
		RoomID:           booking.RoomID,
		RoomNumber:       booking.Room.RoomNumber,
		RoomType:         booking.Room.RoomType,
		Capacity:         booking.Room.Capacity,
		From:             utils.FormatDate(time.Time(booking.StartDate)),
		To:               utils.FormatDate(time.Time(booking.EndDate)),
		Guests:           booking.Guests,
		CreatedUtc:       booking.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// ListAll returns every booking, newest first, for the admin listing.
func (s *BookingService) ListAll(ctx context.Context) ([]dto.BookingListItem, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Preload("Room").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	items := make([]dto.BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.BookingListItem{
			BookingReference: b.Reference,
			HotelID:          b.HotelID,
			HotelName:        b.Hotel.Name,
			RoomNumber:       b.Room.RoomNumber,
			RoomType:         b.Room.RoomType,
			Guests:           b.Guests,
			From:             utils.FormatDate(time.Time(b.StartDate)),
			To:               utils.FormatDate(time.Time(b.EndDate)),
			CreatedUtc:       b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return items, nil
}

// nightsInclusive expands [from..to] into one entry per calendar night,
// both endpoints included. The range is always finite and small.
func nightsInclusive(from, to time.Time) []time.Time {
	var nights []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}
