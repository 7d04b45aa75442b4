package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses. PaymentStatus is free text beyond these; the public path
// only ever writes PaymentStatusPending.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Booking is a reservation request snapshot. TotalAmount is copied from the
// room's price at creation time and never changes afterwards, even if the
// room is repriced.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoomID        uint      `gorm:"column:room_id;index;not null" json:"roomId"`
	FirstName     string    `gorm:"size:64;not null" json:"firstName"`
	LastName      string    `gorm:"size:64;not null" json:"lastName"`
	Email         string    `gorm:"size:120;not null" json:"email"`
	Phone         string    `gorm:"size:32;not null" json:"phone"`
	CheckIn       time.Time `gorm:"column:check_in;type:date;not null" json:"checkIn"`
	CheckOut      time.Time `gorm:"column:check_out;type:date;not null" json:"checkOut"`
	Guests        int       `gorm:"not null" json:"guests"`
	PaymentMethod string    `gorm:"size:32" json:"paymentMethod"`
	PaymentStatus string    `gorm:"size:32;default:pending" json:"paymentStatus"`
	TotalAmount   float64   `gorm:"column:total_amount" json:"totalAmount"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
