package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-backend/models"
)

// ErrOverlap is reported by CreateIfAvailable when the requested range shares
// at least one day with an existing booking for the same room.
var ErrOverlap = errors.New("booking dates overlap an existing booking")

// BookingRepository abstracts booking persistence. Delete reports
// gorm.ErrRecordNotFound when the id does not exist.
type BookingRepository interface {
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error
	FindOverlapping(ctx context.Context, roomID uint, start, end time.Time, excludeID *uint) ([]models.Booking, error)
	ListByRoom(ctx context.Context, roomID uint) ([]models.Booking, error)
	Delete(ctx context.Context, id uint) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Comparisons are inclusive on both ends: ranges that merely touch conflict,
// so a stay cannot end the day another starts.
func overlapQuery(tx *gorm.DB, roomID uint, start, end time.Time, excludeID *uint) *gorm.DB {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("date_start <= ? AND date_end >= ?", datatypes.Date(end), datatypes.Date(start))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	return q
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, roomID uint, start, end time.Time, excludeID *uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := overlapQuery(r.db.WithContext(ctx), roomID, start, end, excludeID).Find(&bookings).Error
	return bookings, err
}

// CreateIfAvailable runs the overlap check and the insert in one transaction,
// holding row locks on the room's bookings so two concurrent creations cannot
// both pass the check.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := overlapQuery(tx, booking.RoomID, time.Time(booking.DateStart), time.Time(booking.DateEnd), nil).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrOverlap
		}
		return tx.Create(booking).Error
	})
}

func (r *bookingRepository) ListByRoom(ctx context.Context, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("date_start asc").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
