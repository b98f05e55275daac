package models

import "gorm.io/datatypes"

// BookingNight is one occupied calendar night of a booking. The unique index
// on (room_id, night) is what prevents double-booking: concurrent allocations
// racing for the same room and night cannot both commit.
type BookingNight struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BookingID uint           `gorm:"column:booking_id;not null;index" json:"bookingId"`
	RoomID    uint           `gorm:"column:room_id;not null;uniqueIndex:uniq_room_night" json:"roomId"`
	Night     datatypes.Date `gorm:"column:night;not null;uniqueIndex:uniq_room_night" json:"night"`
}
