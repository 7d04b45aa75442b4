// Package serializers is the single source of truth for the external JSON
// shape of every entity. Any attribute exposed over the API is added here,
// not at individual call sites.
package serializers

import (
	"strconv"
	"strings"
	"time"

	"parkpalace-backend/models"
)

const dateLayout = "2006-01-02"

type RoomResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Capacity    int      `json:"capacity"`
	Size        string   `json:"size"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
}

type MenuItemResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Dietary     []string `json:"dietary"`
	Available   bool     `json:"available"`
}

type BookingResponse struct {
	ID            uint   `json:"id"`
	RoomID        uint   `json:"roomId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Guests        int    `json:"guests"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	CreatedAt     string `json:"createdAt"`
	TotalAmount   string `json:"totalAmount"`
}

func SerializeRoom(room models.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Price:       FormatPrice(room.Price),
		ImageURL:    room.ImageURL,
		Capacity:    room.Capacity,
		Size:        room.Size,
		Amenities:   tags(room.Amenities),
		Featured:    room.Featured,
	}
}

func SerializeRooms(rooms []models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, SerializeRoom(room))
	}
	return out
}

func SerializeMenuItem(item models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       FormatPrice(item.Price),
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Dietary:     tags(item.Dietary),
		Available:   item.Available,
	}
}

func SerializeMenuItems(items []models.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, SerializeMenuItem(item))
	}
	return out
}

func SerializeBooking(booking models.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID,
		RoomID:        booking.RoomID,
		FirstName:     booking.FirstName,
		LastName:      booking.LastName,
		Email:         booking.Email,
		Phone:         booking.Phone,
		CheckIn:       booking.CheckIn.Format(dateLayout),
		CheckOut:      booking.CheckOut.Format(dateLayout),
		Guests:        booking.Guests,
		PaymentMethod: booking.PaymentMethod,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
		TotalAmount:   FormatPrice(booking.TotalAmount),
	}
}

func SerializeBookings(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, SerializeBooking(booking))
	}
	return out
}

// FormatPrice renders a currency amount with exactly two decimal places.
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// SplitTags converts a legacy comma-joined tag string ("King Bed,City View")
// into an ordered slice. Empty input yields an empty, non-nil slice.
func SplitTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// tags guarantees a non-nil slice so empty tag sets serialize as [].
func tags(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
