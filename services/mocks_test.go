package services

import (
	"context"
	"time"

	"booking-backend/models"
)

// Hand-rolled repository mocks; each test overrides only the funcs it needs.

type mockRoomRepo struct {
	createFunc func(ctx context.Context, room *models.Room) error
	listFunc   func(ctx context.Context, sortColumn string, desc bool) ([]models.Room, error)
	deleteFunc func(ctx context.Context, id uint) error
	existsFunc func(ctx context.Context, id uint) (bool, error)

	createCalls int
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, room)
	}
	room.ID = 1
	return nil
}

func (m *mockRoomRepo) List(ctx context.Context, sortColumn string, desc bool) ([]models.Room, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, sortColumn, desc)
	}
	return []models.Room{}, nil
}

func (m *mockRoomRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRoomRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}

type mockBookingRepo struct {
	createFunc func(ctx context.Context, booking *models.Booking) error
	findFunc   func(ctx context.Context, roomID uint, start, end time.Time, excludeID *uint) ([]models.Booking, error)
	listFunc   func(ctx context.Context, roomID uint) ([]models.Booking, error)
	deleteFunc func(ctx context.Context, id uint) error

	createCalls int
}

func (m *mockBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = 1
	return nil
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, roomID uint, start, end time.Time, excludeID *uint) ([]models.Booking, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, roomID, start, end, excludeID)
	}
	return []models.Booking{}, nil
}

func (m *mockBookingRepo) ListByRoom(ctx context.Context, roomID uint) ([]models.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, roomID)
	}
	return []models.Booking{}, nil
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}
