package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"parkpalace-backend/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// BookingService wraps *gorm.DB with the booking creation contract.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// GuestCount accepts a JSON number or a numeric string, since booking forms
// send either. Present is false only when the field was absent entirely.
type GuestCount struct {
	Present bool
	Valid   bool
	Value   int
}

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	g.Present = true
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		g.Valid = false
		return nil
	}
	g.Valid = true
	g.Value = n
	return nil
}

// BookingRequest is the public booking creation payload. Pointer fields
// distinguish absent keys from zero values.
type BookingRequest struct {
	RoomID        *uint      `json:"roomId"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	CheckIn       *string    `json:"checkIn"`
	CheckOut      *string    `json:"checkOut"`
	Guests        GuestCount `json:"guests"`
	PaymentMethod *string    `json:"paymentMethod"`
}

// Create validates the request, snapshots the room price into TotalAmount and
// persists the booking. Check-in/check-out ordering is not enforced and no
// overlap check is made against existing bookings for the room; two
// overlapping bookings can both succeed. That matches current behavior and is
// a documented limitation, not an oversight.
func (s *BookingService) Create(req BookingRequest) (models.Booking, error) {
	// Presence checks fail fast on the first absent field, in a fixed order.
	switch {
	case req.RoomID == nil:
		return models.Booking{}, missingField("roomId")
	case req.FirstName == nil:
		return models.Booking{}, missingField("firstName")
	case req.LastName == nil:
		return models.Booking{}, missingField("lastName")
	case req.Email == nil:
		return models.Booking{}, missingField("email")
	case req.Phone == nil:
		return models.Booking{}, missingField("phone")
	case req.CheckIn == nil:
		return models.Booking{}, missingField("checkIn")
	case req.CheckOut == nil:
		return models.Booking{}, missingField("checkOut")
	case !req.Guests.Present:
		return models.Booking{}, missingField("guests")
	}

	var room models.Room
	if err := s.DB.First(&room, *req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrRoomNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to look up room %d: %w", *req.RoomID, err)
	}

	checkIn, err := time.Parse(dateLayout, *req.CheckIn)
	if err != nil {
		return models.Booking{}, newValidationError("checkIn", "checkIn must be a YYYY-MM-DD date")
	}
	checkOut, err := time.Parse(dateLayout, *req.CheckOut)
	if err != nil {
		return models.Booking{}, newValidationError("checkOut", "checkOut must be a YYYY-MM-DD date")
	}

	if !req.Guests.Valid || req.Guests.Value <= 0 {
		return models.Booking{}, newValidationError("guests", "guests must be a positive integer")
	}

	booking := models.Booking{
		RoomID:        room.ID,
		FirstName:     *req.FirstName,
		LastName:      *req.LastName,
		Email:         *req.Email,
		Phone:         *req.Phone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests.Value,
		PaymentStatus: models.PaymentStatusPending,
		// Frozen price snapshot; later room price edits never touch it.
		TotalAmount: room.Price,
	}
	if req.PaymentMethod != nil {
		booking.PaymentMethod = *req.PaymentMethod
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return booking, nil
}

// List returns all bookings in insertion order. Admin surface only.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdatePayment sets payment status and optionally payment method. It never
// touches the total_amount snapshot or created_at.
func (s *BookingService) UpdatePayment(id uint, status string, method *string) (models.Booking, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.Booking{}, newValidationError("paymentStatus", "paymentStatus is required")
	}

	booking, err := s.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	updates := map[string]interface{}{"payment_status": status}
	if method != nil {
		updates["payment_method"] = *method
	}
	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	booking.PaymentStatus = status
	if method != nil {
		booking.PaymentMethod = *method
	}
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
