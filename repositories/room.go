package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-backend/models"
)

// RoomRepository abstracts room persistence so services can be tested against
// fakes. Delete reports gorm.ErrRecordNotFound when the id does not exist.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	List(ctx context.Context, sortColumn string, desc bool) ([]models.Room, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// List returns all rooms ordered by sortColumn. The service layer guarantees
// sortColumn is a known column name; the clause builder quotes it regardless.
func (r *roomRepository) List(ctx context.Context, sortColumn string, desc bool) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumn}, Desc: desc}).
		Find(&rooms).Error
	return rooms, err
}

// Delete removes the room and all of its bookings in one transaction. The
// bookings FK also cascades, but deleting explicitly keeps the behavior
// independent of how the schema was created.
func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Room{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *roomRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
