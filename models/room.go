package models

import "strings"

// RoomType is the fixed set of room categories.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeDeluxe RoomType = "Deluxe"
)

// ParseRoomType accepts a case-insensitive room type name.
func ParseRoomType(s string) (RoomType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return RoomTypeSingle, true
	case "double":
		return RoomTypeDouble, true
	case "deluxe":
		return RoomTypeDeluxe, true
	}
	return "", false
}

// Room belongs to exactly one hotel. (hotel_id, room_number) is unique.
type Room struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"column:hotel_id;not null;uniqueIndex:uniq_hotel_room_number" json:"hotelId"`

	RoomNumber int      `gorm:"column:room_number;not null;uniqueIndex:uniq_hotel_room_number" json:"roomNumber"`
	RoomType   RoomType `gorm:"column:room_type;size:16;not null" json:"roomType"`
	Capacity   int      `gorm:"column:capacity;not null" json:"capacity"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
