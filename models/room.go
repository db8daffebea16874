package models

import (
	"time"
)

type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	CreatedAt   time.Time `json:"created_at"`

	// Deleting a room deletes its bookings.
	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}
