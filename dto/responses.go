package dto

import (
	"time"

	"booking-backend/models"
	"booking-backend/validators"
)

// All dates cross the wire as YYYY-MM-DD; created_at is truncated to the day.

type RoomResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	CreatedAt   string `json:"created_at"`
}

func NewRoomResponse(room models.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Description: room.Description,
		Price:       room.Price,
		CreatedAt:   room.CreatedAt.Format(validators.DateLayout),
	}
}

func NewRoomList(rooms []models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, NewRoomResponse(room))
	}
	return out
}

type BookingResponse struct {
	ID        uint   `json:"id"`
	RoomID    uint   `json:"room_id"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

func NewBookingResponse(booking models.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		DateStart: time.Time(booking.DateStart).Format(validators.DateLayout),
		DateEnd:   time.Time(booking.DateEnd).Format(validators.DateLayout),
	}
}

func NewBookingList(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, NewBookingResponse(booking))
	}
	return out
}
