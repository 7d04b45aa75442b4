package services

import (
	"errors"
	"fmt"

	"parkpalace-backend/models"

	"gorm.io/gorm"
)

// RoomService owns all room reads plus the admin-side writes. Rooms are
// read-only on the public path.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) ListFeatured() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("featured = ?", true).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update applies a partial column update. Callers strip protected keys first.
func (s *RoomService) Update(id uint, updates map[string]interface{}) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}
	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete soft-deletes the room. Existing bookings keep their room_id and
// price snapshots.
func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
