package dto

import "hotel-booking-api/models"

// CreateBookingRequest is the booking creation payload. Dates are yyyy-MM-dd.
// RoomType is an optional filter; omit it for pure best-fit allocation.
type CreateBookingRequest struct {
	HotelID  uint    `json:"hotelId"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Guests   int     `json:"guests"`
	RoomType *string `json:"roomType,omitempty"`
}

// BookingCreated is returned with 201 on successful allocation.
type BookingCreated struct {
	BookingReference string          `json:"bookingReference"`
	HotelID          uint            `json:"hotelId"`
	RoomID           uint            `json:"roomId"`
	RoomNumber       int             `json:"roomNumber"`
	RoomType         models.RoomType `json:"roomType"`
	Capacity         int             `json:"capacity"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Guests           int             `json:"guests"`
}

// BookingDetails is the lookup-by-reference projection.
type BookingDetails struct {
	BookingReference string          `json:"bookingReference"`
	HotelID          uint            `json:"hotelId"`
	HotelName        string          `json:"hotelName"`
	RoomID           uint            `json:"roomId"`
	RoomNumber       int             `json:"roomNumber"`
	RoomType         models.RoomType `json:"roomType"`
	Capacity         int             `json:"capacity"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Guests           int             `json:"guests"`
	CreatedUtc       string          `json:"createdUtc"`
}

// BookingListItem is one row of the admin booking listing.
type BookingListItem struct {
	BookingReference string          `json:"bookingReference"`
	HotelID          uint            `json:"hotelId"`
	HotelName        string          `json:"hotelName"`
	RoomNumber       int             `json:"roomNumber"`
	RoomType         models.RoomType `json:"roomType"`
	Guests           int             `json:"guests"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	CreatedUtc       string          `json:"createdUtc"`
}

// SeedResult reports how many rows the seed operation created.
// All zeros means the database was already seeded.
type SeedResult struct {
	Hotels        int `json:"hotels"`
	Rooms         int `json:"rooms"`
	Bookings      int `json:"bookings"`
	BookingNights int `json:"bookingNights"`
}
