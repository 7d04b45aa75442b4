package serializers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"parkpalace-backend/models"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "450.00", FormatPrice(450.0))
	assert.Equal(t, "450.50", FormatPrice(450.5))
	assert.Equal(t, "1200.00", FormatPrice(1200))
	assert.Equal(t, "0.00", FormatPrice(0))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"King Bed", "City View"}, SplitTags("King Bed,City View"))
	assert.Equal(t, []string{"vegan", "gluten-free"}, SplitTags("vegan,gluten-free"))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{}, SplitTags("   "))
	assert.Equal(t, []string{"solo"}, SplitTags("solo,"))
}

func TestSerializeRoom(t *testing.T) {
	room := models.Room{
		ID:          1,
		Name:        "Executive Suite",
		Description: "Spacious suite",
		Price:       450.0,
		ImageURL:    "images/rooms/executive_suite.jpg",
		Capacity:    4,
		Size:        "75 sqm",
		Amenities:   datatypes.NewJSONSlice(SplitTags("King Bed,City View")),
		Featured:    true,
	}

	resp := SerializeRoom(room)
	assert.Equal(t, "450.00", resp.Price)
	assert.Equal(t, []string{"King Bed", "City View"}, resp.Amenities)
	assert.True(t, resp.Featured)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"imageUrl":"images/rooms/executive_suite.jpg"`)
	assert.Contains(t, string(raw), `"price":"450.00"`)
}

func TestSerializeRoomEmptyAmenities(t *testing.T) {
	resp := SerializeRoom(models.Room{ID: 2, Name: "Garden Room", Price: 180})
	assert.NotNil(t, resp.Amenities)
	assert.Empty(t, resp.Amenities)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amenities":[]`)
}

func TestSerializeMenuItem(t *testing.T) {
	item := models.MenuItem{
		ID:          3,
		Name:        "Healthy Power Bowl",
		Description: "Quinoa and avocado",
		Price:       24.0,
		Category:    models.CategoryBreakfast,
		Dietary:     datatypes.NewJSONSlice(SplitTags("vegan,gluten-free")),
		Available:   true,
	}

	resp := SerializeMenuItem(item)
	assert.Equal(t, "24.00", resp.Price)
	assert.Equal(t, "breakfast", resp.Category)
	assert.Equal(t, []string{"vegan", "gluten-free"}, resp.Dietary)
}

func TestSerializeBookingFormatsDatesAndAmount(t *testing.T) {
	booking := models.Booking{
		ID:            5,
		RoomID:        1,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Phone:         "+15550100",
		CheckIn:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Guests:        2,
		PaymentMethod: "card",
		PaymentStatus: models.PaymentStatusPending,
		TotalAmount:   450.0,
		CreatedAt:     time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
	}

	resp := SerializeBooking(booking)
	assert.Equal(t, "2026-09-01", resp.CheckIn)
	assert.Equal(t, "2026-09-05", resp.CheckOut)
	assert.Equal(t, "450.00", resp.TotalAmount)
	assert.Equal(t, "2026-08-30T10:30:00Z", resp.CreatedAt)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	for _, key := range []string{`"roomId"`, `"firstName"`, `"lastName"`, `"checkIn"`, `"checkOut"`, `"paymentStatus"`, `"totalAmount"`, `"createdAt"`} {
		assert.Contains(t, string(raw), key)
	}
}

func TestSerializeSlicesAreNonNilAndOrdered(t *testing.T) {
	assert.NotNil(t, SerializeRooms(nil))
	assert.NotNil(t, SerializeBookings(nil))

	items := SerializeMenuItems([]models.MenuItem{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Name)
	assert.Equal(t, "Second", items[1].Name)
}
