package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"railway-booking/handlers"
)

func newBookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/bookings", handlers.CreateBooking)
	router.GET("/api/bookings", handlers.GetUserBookings)
	router.GET("/api/trains/search", handlers.SearchTrains)
	return router
}

func TestCreateBooking_EmptyPassengersRejectedBeforeWrite(t *testing.T) {
	router := newBookingRouter()

	body := `{
		"userId": 1,
		"routeId": 3,
		"trainId": 5,
		"journeyDate": "2026-09-15",
		"passengers": [],
		"paymentMethod": "UPI"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required booking information")
}

func TestCreateBooking_MissingRouteRejected(t *testing.T) {
	router := newBookingRouter()

	body := `{
		"userId": 1,
		"journeyDate": "2026-09-15",
		"passengers": [
			{"name": "Asha Verma", "age": 34, "gender": "Female", "classType": "AC 2"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking_IncompletePassengerRejected(t *testing.T) {
	router := newBookingRouter()

	body := `{
		"userId": 1,
		"routeId": 3,
		"trainId": 5,
		"journeyDate": "2026-09-15",
		"passengers": [
			{"name": "Asha Verma"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserBookings_RequiresUserID(t *testing.T) {
	router := newBookingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID required")
}

func TestSearchTrains_RequiresAllParams(t *testing.T) {
	router := newBookingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/trains/search?from=Mumbai&to=Delhi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required parameters")
}
