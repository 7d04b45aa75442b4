package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Known menu categories. The column is an open string enum, so other values
// are accepted as-is.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategoryBeverages = "beverages"
	CategoryDesserts  = "desserts"
)

type MenuItem struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"size:128;not null" json:"name"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Price       float64                     `gorm:"not null" json:"price"`
	Category    string                      `gorm:"size:32;not null;index" json:"category"`
	ImageURL    string                      `gorm:"column:image_url;size:256" json:"imageUrl"`
	Dietary     datatypes.JSONSlice[string] `json:"dietary"`
	Available   bool                        `gorm:"default:true" json:"available"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
