package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parkpalace-backend/services"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock := newMockDB(t)
	bc := NewBookingController(services.NewBookingService(db))
	rc := NewRoomController(services.NewRoomService(db))

	r := gin.New()
	r.POST("/api/bookings", bc.CreateBooking)
	r.GET("/api/bookings/:id", bc.GetBookingByID)
	r.GET("/api/rooms/:id", rc.GetRoomByID)
	return r, mock
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpointMissingField(t *testing.T) {
	r, mock := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing required field roomId", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingEndpointRoomNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	payload := `{"roomId": 99, "firstName": "Ada", "lastName": "Lovelace",
		"email": "ada@example.com", "phone": "+15550100",
		"checkIn": "2026-09-01", "checkOut": "2026-09-05", "guests": 2}`
	w := doJSON(r, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Room not found", body["error"])
}

func TestCreateBookingEndpointSuccess(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "capacity", "featured"}).
			AddRow(1, "Executive Suite", "d", 450.0, 4, true))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	payload := `{"roomId": 1, "firstName": "Ada", "lastName": "Lovelace",
		"email": "ada@example.com", "phone": "+15550100",
		"checkIn": "2026-09-01", "checkOut": "2026-09-05", "guests": 2,
		"paymentMethod": "card"}`
	w := doJSON(r, http.MethodPost, "/api/bookings", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(12), body["id"])
	assert.Equal(t, "450.00", body["totalAmount"])
	assert.Equal(t, "pending", body["paymentStatus"])
	assert.Equal(t, "2026-09-01", body["checkIn"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomEndpointNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(r, http.MethodGet, "/api/rooms/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Room not found", body["error"])
}

func TestGetRoomEndpointNonNumericID(t *testing.T) {
	r, mock := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/rooms/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingEndpointNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(r, http.MethodGet, "/api/bookings/31337", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Booking not found", body["error"])
}
