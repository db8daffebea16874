package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booking-backend/apperrors"
	"booking-backend/models"
	"booking-backend/repositories"
	"booking-backend/validators"
)

type RoomService struct {
	rooms     repositories.RoomRepository
	validator *validators.RoomValidator
}

func NewRoomService(rooms repositories.RoomRepository, validator *validators.RoomValidator) *RoomService {
	return &RoomService{rooms: rooms, validator: validator}
}

// Create validates the fields and persists a new room. The id and created_at
// are assigned by the store.
func (s *RoomService) Create(ctx context.Context, description string, price int) (uint, error) {
	if err := s.validator.Validate(description, price); err != nil {
		return 0, err
	}

	room := models.Room{Description: description, Price: price}
	if err := s.rooms.Create(ctx, &room); err != nil {
		return 0, apperrors.Internal("failed to create room", err)
	}
	return room.ID, nil
}

// Delete removes the room and, through the repository transaction, all of its
// bookings.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	err := s.rooms.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Room")
	}
	if err != nil {
		return apperrors.Internal("failed to delete room", err)
	}
	return nil
}

// List returns all rooms. sortBy falls back to created_at for unrecognized
// values and order is descending only for the literal "desc"; bad parameters
// never produce an error.
func (s *RoomService) List(ctx context.Context, sortBy, order string) ([]models.Room, error) {
	column := "created_at"
	if sortBy == "price" {
		column = "price"
	}
	desc := order == "desc"

	rooms, err := s.rooms.List(ctx, column, desc)
	if err != nil {
		return nil, apperrors.Internal("failed to list rooms", err)
	}
	return rooms, nil
}
