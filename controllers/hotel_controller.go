package controllers

import (
	"net/http"

	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
)

// HotelInfo is the static hotel description served by /api/hotel. It is not
// entity-backed; values come from the environment with branded defaults.
type HotelInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	CheckInTime  string   `json:"checkInTime"`
	CheckOutTime string   `json:"checkOutTime"`
	Amenities    []string `json:"amenities"`
}

// GET /api/hotel
func GetHotelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, HotelInfo{
		Name:         utils.EnvOrDefault("HOTEL_NAME", "Park Palace Hotel"),
		Description:  utils.EnvOrDefault("HOTEL_DESCRIPTION", "A luxury city-center hotel with oceanfront suites and fine dining."),
		Address:      utils.EnvOrDefault("HOTEL_ADDRESS", "1 Palace Park Avenue"),
		Phone:        utils.EnvOrDefault("HOTEL_PHONE", "+1 555 0100"),
		Email:        utils.EnvOrDefault("HOTEL_EMAIL", "reservations@parkpalace.example"),
		CheckInTime:  utils.EnvOrDefault("HOTEL_CHECKIN_TIME", "14:00"),
		CheckOutTime: utils.EnvOrDefault("HOTEL_CHECKOUT_TIME", "12:00"),
		Amenities:    []string{"Spa", "Rooftop Pool", "Fitness Center", "Concierge", "Fine Dining"},
	})
}
