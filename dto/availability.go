package dto

import "hotel-booking-api/models"

// RoomAvailability describes one room free for the whole requested range.
type RoomAvailability struct {
	RoomID     uint            `json:"roomId"`
	RoomNumber int             `json:"roomNumber"`
	RoomType   models.RoomType `json:"roomType"`
	Capacity   int             `json:"capacity"`
}

// AvailabilityResult is the response body of the availability endpoint.
type AvailabilityResult struct {
	HotelID        uint               `json:"hotelId"`
	From           string             `json:"from"`
	To             string             `json:"to"`
	Guests         int                `json:"guests"`
	AvailableRooms []RoomAvailability `json:"availableRooms"`
	Message        string             `json:"message"`
}
