package controllers

import (
	"net/http"

	"parkpalace-backend/serializers"
	"parkpalace-backend/services"
	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.Service.Create(req)
	if err != nil {
		respondServiceError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, serializers.SerializeBooking(booking))
}

// GET /api/bookings/:id
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		return
	}
	booking, err := bc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeBooking(booking))
}

// GET /api/admin/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Service.List()
	if err != nil {
		respondServiceError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeBookings(bookings))
}

type bookingPaymentPayload struct {
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod *string `json:"paymentMethod"`
}

// PATCH /api/admin/bookings/:id
// Only payment fields are mutable; the total_amount snapshot is not.
func (bc *BookingController) UpdateBookingPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		return
	}

	var payload bookingPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.Service.UpdatePayment(id, payload.PaymentStatus, payload.PaymentMethod)
	if err != nil {
		respondServiceError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeBooking(booking))
}

// DELETE /api/admin/bookings/:id
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		return
	}
	if err := bc.Service.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete booking")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking deleted")
}
