package models

import "time"

// Hotel owns its rooms; deleting a hotel cascades to them.
type Hotel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;size:200;not null;index" json:"name"`

	CreatedAt time.Time `json:"-"`

	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}
