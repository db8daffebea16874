package dto

type CreateRoomRequest struct {
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// Field-level date validation happens in the service, so the strings are
// passed through as-is here.
type CreateBookingRequest struct {
	RoomID    uint   `json:"room_id"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}
