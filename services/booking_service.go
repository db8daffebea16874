package services

import (
	"context"
	"errors"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"booking-backend/apperrors"
	"booking-backend/models"
	"booking-backend/repositories"
	"booking-backend/validators"
)

const fkConstraintViolation = 1452

type BookingService struct {
	bookings repositories.BookingRepository
	rooms    repositories.RoomRepository
}

func NewBookingService(bookings repositories.BookingRepository, rooms repositories.RoomRepository) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms}
}

// Create checks, in order: the room exists, the dates parse and are not
// inverted, and the range does not overlap an existing booking for the room.
// The first failure wins. The overlap check and the insert run in one locked
// transaction inside the repository.
func (s *BookingService) Create(ctx context.Context, roomID uint, dateStart, dateEnd string) (uint, error) {
	ok, err := s.rooms.Exists(ctx, roomID)
	if err != nil {
		return 0, apperrors.Internal("failed to look up room", err)
	}
	if !ok {
		return 0, apperrors.NotFound("Room")
	}

	start, end, err := validators.ParseDateRange(dateStart, dateEnd)
	if err != nil {
		return 0, err
	}

	booking := models.Booking{
		RoomID:    roomID,
		DateStart: datatypes.Date(start),
		DateEnd:   datatypes.Date(end),
	}
	err = s.bookings.CreateIfAvailable(ctx, &booking)
	if errors.Is(err, repositories.ErrOverlap) {
		return 0, apperrors.Conflict("Room already booked for these dates")
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == fkConstraintViolation {
		// Room deleted between the existence check and the insert.
		return 0, apperrors.NotFound("Room")
	}
	if err != nil {
		return 0, apperrors.Internal("failed to create booking", err)
	}
	return booking.ID, nil
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	err := s.bookings.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Booking")
	}
	if err != nil {
		return apperrors.Internal("failed to delete booking", err)
	}
	return nil
}

// ListByRoom returns the room's bookings ordered by start date. A room with no
// bookings, or no room at all, yields an empty slice rather than an error.
func (s *BookingService) ListByRoom(ctx context.Context, roomID uint) ([]models.Booking, error) {
	bookings, err := s.bookings.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, apperrors.Internal("failed to list bookings", err)
	}
	return bookings, nil
}
