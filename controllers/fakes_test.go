package controllers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"booking-backend/models"
	"booking-backend/repositories"
)

// memStore is an in-memory stand-in for the relational store, shared by the
// room and booking repository fakes so cascades behave like the real thing.
type memStore struct {
	mu          sync.Mutex
	rooms       map[uint]models.Room
	bookings    map[uint]models.Booking
	nextRoom    uint
	nextBooking uint
}

func newMemStore() *memStore {
	return &memStore{
		rooms:    make(map[uint]models.Room),
		bookings: make(map[uint]models.Booking),
	}
}

func (s *memStore) roomRepo() repositories.RoomRepository       { return &memRoomRepo{store: s} }
func (s *memStore) bookingRepo() repositories.BookingRepository { return &memBookingRepo{store: s} }

func overlaps(b models.Booking, roomID uint, start, end time.Time) bool {
	if b.RoomID != roomID {
		return false
	}
	bs := time.Time(b.DateStart)
	be := time.Time(b.DateEnd)
	return !bs.After(end) && !be.Before(start)
}

type memRoomRepo struct {
	store *memStore
}

func (r *memRoomRepo) Create(_ context.Context, room *models.Room) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRoom++
	room.ID = s.nextRoom
	room.CreatedAt = time.Now().Add(time.Duration(s.nextRoom) * time.Millisecond)
	s.rooms[room.ID] = *room
	return nil
}

func (r *memRoomRepo) List(_ context.Context, sortColumn string, desc bool) ([]models.Room, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		var less bool
		if sortColumn == "price" {
			less = rooms[i].Price < rooms[j].Price
		} else {
			less = rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
		}
		if desc {
			return !less
		}
		return less
	})
	return rooms, nil
}

func (r *memRoomRepo) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.rooms, id)
	for bid, b := range s.bookings {
		if b.RoomID == id {
			delete(s.bookings, bid)
		}
	}
	return nil
}

func (r *memRoomRepo) Exists(_ context.Context, id uint) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rooms[id]
	return ok, nil
}

type memBookingRepo struct {
	store *memStore
}

func (r *memBookingRepo) CreateIfAvailable(_ context.Context, booking *models.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Time(booking.DateStart)
	end := time.Time(booking.DateEnd)
	for _, b := range s.bookings {
		if overlaps(b, booking.RoomID, start, end) {
			return repositories.ErrOverlap
		}
	}
	s.nextBooking++
	booking.ID = s.nextBooking
	s.bookings[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) FindOverlapping(_ context.Context, roomID uint, start, end time.Time, excludeID *uint) ([]models.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if overlaps(b, roomID, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByRoom(_ context.Context, roomID uint) ([]models.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	bookings := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return time.Time(bookings[i].DateStart).Before(time.Time(bookings[j].DateStart))
	})
	return bookings, nil
}

func (r *memBookingRepo) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.bookings, id)
	return nil
}
