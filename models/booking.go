package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking reserves one room of one hotel for an inclusive range of nights
// [StartDate..EndDate]. A booking is created atomically together with its
// BookingNight rows and is never updated afterwards.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"column:reference;size:32;not null;uniqueIndex" json:"reference"`

	HotelID uint `gorm:"column:hotel_id;not null;index" json:"hotelId"`
	RoomID  uint `gorm:"column:room_id;not null;index:idx_bookings_room_dates" json:"roomId"`

	StartDate datatypes.Date `gorm:"column:start_date;not null;index:idx_bookings_room_dates" json:"startDate"`
	EndDate   datatypes.Date `gorm:"column:end_date;not null;index:idx_bookings_room_dates" json:"endDate"`

	Guests int `gorm:"column:guests;not null" json:"guests"`

	CreatedAt time.Time `json:"createdAt"`

	Hotel  Hotel          `gorm:"foreignKey:HotelID;references:ID" json:"-"`
	Room   Room           `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Nights []BookingNight `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
}
