package services

import (
	"errors"
	"fmt"

	"parkpalace-backend/models"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

func (s *MenuService) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// ListByCategory filters by exact, case-sensitive category match. An unknown
// category yields an empty slice, not an error.
func (s *MenuService) ListByCategory(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Where("category = ?", category).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items for category %q: %w", category, err)
	}
	return items, nil
}

func (s *MenuService) GetByID(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		return models.MenuItem{}, fmt.Errorf("failed to load menu item %d: %w", id, err)
	}
	return item, nil
}

func (s *MenuService) Create(item *models.MenuItem) error {
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *MenuService) Update(id uint, updates map[string]interface{}) (models.MenuItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return models.MenuItem{}, err
	}
	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to update menu item %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *MenuService) Delete(id uint) error {
	result := s.DB.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
