package models

import (
	"gorm.io/datatypes"
)

// Booking reserves a room for an inclusive date range. Date columns are
// DATE-typed; wire serialization (YYYY-MM-DD) lives in the dto package.
type Booking struct {
	ID        uint           `gorm:"primaryKey"`
	RoomID    uint           `gorm:"column:room_id;index;not null"`
	DateStart datatypes.Date `gorm:"column:date_start;type:date;not null"`
	DateEnd   datatypes.Date `gorm:"column:date_end;type:date;not null"`
}
