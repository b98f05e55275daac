package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-booking-api/models"
	"hotel-booking-api/utils"
)

func futureDate(days int) time.Time {
	return utils.Today().AddDate(0, 0, days)
}

func bookingInput(hotelID uint, fromDays, toDays, guests int) CreateBookingInput {
	return CreateBookingInput{
		HotelID: hotelID,
		From:    futureDate(fromDays),
		To:      futureDate(toDays),
		Guests:  guests,
	}
}

func roomTypePtr(rt models.RoomType) *models.RoomType { return &rt }

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Validation Hotel")
	svc := NewBookingService(db)

	tests := []struct {
		name  string
		input CreateBookingInput
	}{
		{"zero hotel id", bookingInput(0, 10, 12, 2)},
		{"zero guests", bookingInput(hotel.ID, 10, 12, 0)},
		{"negative guests", bookingInput(hotel.ID, 10, 12, -1)},
		{"to before from", bookingInput(hotel.ID, 12, 10, 2)},
		{"from in the past", bookingInput(hotel.ID, -1, 3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			wantFailureCode(t, err, CodeValidation)
		})
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Fatalf("validation failures must not touch storage, found %d bookings", count)
	}
}

func TestCreateBookingHotelNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.Create(context.Background(), bookingInput(12345, 10, 12, 2))
	wantFailureCode(t, err, CodeNotFound)
}

func TestCreateBookingNoMatchingRooms(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Small Hotel")
	svc := NewBookingService(db)

	// Largest room holds 4; nothing can ever satisfy 99 guests.
	_, err := svc.Create(context.Background(), bookingInput(hotel.ID, 10, 12, 99))
	wantFailureCode(t, err, CodeNoRooms)

	// Capacity would fit, but no Single holds 2.
	in := bookingInput(hotel.ID, 10, 12, 2)
	in.RoomType = roomTypePtr(models.RoomTypeSingle)
	_, err = svc.Create(context.Background(), in)
	wantFailureCode(t, err, CodeNoRooms)
}

func TestCreateBookingBestFit(t *testing.T) {
	tests := []struct {
		name           string
		guests         int
		roomType       *models.RoomType
		wantRoomNumber int
	}{
		{"one guest takes smallest single", 1, nil, 1},
		{"two guests skip singles", 2, nil, 3},
		{"three guests need a deluxe", 3, nil, 5},
		{"type filter overrides best fit", 1, roomTypePtr(models.RoomTypeDeluxe), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			hotel, _ := newTestHotel(t, db, "Best Fit Hotel")
			svc := NewBookingService(db)

			in := bookingInput(hotel.ID, 10, 12, tt.guests)
			in.RoomType = tt.roomType

			created, err := svc.Create(context.Background(), in)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if created.RoomNumber != tt.wantRoomNumber {
				t.Fatalf("expected room %d, got %d", tt.wantRoomNumber, created.RoomNumber)
			}
			if created.BookingReference == "" {
				t.Fatal("expected a booking reference")
			}
		})
	}
}

func TestCreateBookingSkipsOccupiedRoom(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Retry Hotel")
	svc := NewBookingService(db)

	first, err := svc.Create(context.Background(), bookingInput(hotel.ID, 10, 12, 1))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.RoomNumber != 1 {
		t.Fatalf("expected room 1 first, got %d", first.RoomNumber)
	}

	// Same criteria again: room 1's nights are taken, the allocator must
	// fail its insert on the unique index and move on to room 2.
	second, err := svc.Create(context.Background(), bookingInput(hotel.ID, 10, 12, 1))
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.RoomNumber != 2 {
		t.Fatalf("expected room 2 after retry, got %d", second.RoomNumber)
	}

	// The losing attempt must leave no partial rows behind.
	var bookings int64
	db.Model(&models.Booking{}).Count(&bookings)
	if bookings != 2 {
		t.Fatalf("expected 2 bookings, got %d", bookings)
	}
	var nights int64
	db.Model(&models.BookingNight{}).Count(&nights)
	if nights != 6 {
		t.Fatalf("expected 6 night rows (2 bookings x 3 nights), got %d", nights)
	}
}

func TestCreateBookingConflictWhenAllCandidatesTaken(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Conflict Hotel")
	svc := NewBookingService(db)

	in := bookingInput(hotel.ID, 20, 21, 2)
	in.RoomType = roomTypePtr(models.RoomTypeDouble)

	// Two Double rooms: two bookings succeed, the third finds every
	// candidate's nights claimed.
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("booking %d: %v", i+1, err)
		}
	}
	_, err := svc.Create(context.Background(), in)
	wantFailureCode(t, err, CodeConflict)
}

func TestCreateBookingNightDecomposition(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Nights Hotel")
	svc := NewBookingService(db)

	from, to := futureDate(30), futureDate(34)
	created, err := svc.Create(context.Background(), CreateBookingInput{
		HotelID: hotel.ID, From: from, To: to, Guests: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var booking models.Booking
	if err := db.Preload("Nights").Where("reference = ?", created.BookingReference).First(&booking).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}

	// Inclusive range: (to - from).days + 1 nights.
	if len(booking.Nights) != 5 {
		t.Fatalf("expected 5 night rows, got %d", len(booking.Nights))
	}
	seen := map[string]bool{}
	for _, n := range booking.Nights {
		if n.RoomID != booking.RoomID {
			t.Fatalf("night row references room %d, booking has %d", n.RoomID, booking.RoomID)
		}
		seen[utils.FormatDate(time.Time(n.Night))] = true
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !seen[utils.FormatDate(d)] {
			t.Fatalf("missing night row for %s", utils.FormatDate(d))
		}
	}
}

func TestNoDuplicateRoomNights(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Invariant Hotel")
	svc := NewBookingService(db)

	// A mix of overlapping requests; losers retry onto other rooms.
	for i := 0; i < 6; i++ {
		_, err := svc.Create(context.Background(), bookingInput(hotel.ID, 40, 42, 1))
		if err != nil {
			if _, ok := AsFailure(err); !ok {
				t.Fatalf("booking %d: %v", i, err)
			}
		}
	}

	type dup struct {
		RoomID uint
		Night  string
		N      int
	}
	var dups []dup
	err := db.Model(&models.BookingNight{}).
		Select("room_id", "night", "COUNT(*) AS n").
		Group("room_id").Group("night").
		Having("COUNT(*) > 1").
		Scan(&dups).Error
	if err != nil {
		t.Fatalf("scan duplicates: %v", err)
	}
	if len(dups) != 0 {
		t.Fatalf("found duplicated (room, night) pairs: %+v", dups)
	}
}

func TestCreateBookingRoundTrip(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Round Trip Hotel")
	svc := NewBookingService(db)

	created, err := svc.Create(context.Background(), bookingInput(hotel.ID, 15, 17, 2))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	details, err := svc.GetByReference(context.Background(), created.BookingReference)
	if err != nil {
		t.Fatalf("get by reference: %v", err)
	}

	if details.BookingReference != created.BookingReference ||
		details.HotelID != hotel.ID ||
		details.HotelName != hotel.Name ||
		details.RoomID != created.RoomID ||
		details.From != created.From ||
		details.To != created.To ||
		details.Guests != created.Guests {
		t.Fatalf("details do not match created booking:\ncreated: %+v\ndetails: %+v", created, details)
	}
	if _, err := time.Parse(time.RFC3339, details.CreatedUtc); err != nil {
		t.Fatalf("createdUtc %q is not RFC3339: %v", details.CreatedUtc, err)
	}
}

func TestGetByReferenceUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.GetByReference(context.Background(), "BK-DOESNOTEXIST")
	wantFailureCode(t, err, CodeNotFound)
}

func TestConcurrentAllocationSingleRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	hotel := models.Hotel{Name: "One Room Inn"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	room := models.Room{HotelID: hotel.ID, RoomNumber: 1, RoomType: models.RoomTypeSingle, Capacity: 1}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}

	in := bookingInput(hotel.ID, 50, 52, 1)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Create(context.Background(), in)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		wantFailureCode(t, err, CodeConflict)
	}
	if successes != 1 {
		t.Fatalf("expected exactly one winner, got %d", successes)
	}

	var bookings int64
	db.Model(&models.Booking{}).Count(&bookings)
	if bookings != 1 {
		t.Fatalf("expected 1 committed booking, got %d", bookings)
	}
}

func TestListAllIncludesHotelAndRoomDetails(t *testing.T) {
	db := newTestDB(t)
	hotel, _ := newTestHotel(t, db, "Listing Hotel")
	svc := NewBookingService(db)

	refs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		created, err := svc.Create(context.Background(), bookingInput(hotel.ID, 60+3*i, 61+3*i, 1))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		refs = append(refs, created.BookingReference)
	}

	items, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(items))
	}
	listed := map[string]bool{}
	for _, item := range items {
		if item.HotelName != hotel.Name {
			t.Fatalf("expected hotel name %q, got %q", hotel.Name, item.HotelName)
		}
		listed[item.BookingReference] = true
	}
	for _, ref := range refs {
		if !listed[ref] {
			t.Fatalf("booking %s missing from listing", ref)
		}
	}
}
