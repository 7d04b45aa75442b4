package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is a bookable unit. Amenities are stored as a JSON array column so the
// tag list is a first-class string sequence end to end.
type Room struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"size:128;not null" json:"name"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Price       float64                     `gorm:"not null" json:"price"`
	ImageURL    string                      `gorm:"column:image_url;size:256" json:"imageUrl"`
	Capacity    int                         `gorm:"not null" json:"capacity"`
	Size        string                      `gorm:"size:64" json:"size"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Featured    bool                        `gorm:"default:false;index" json:"featured"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Bookings []Booking `gorm:"foreignKey:RoomID" json:"-"`
}
