package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railway-booking/middleware"
	"railway-booking/models"
	"railway-booking/services"
)

// CreateBooking handles POST /api/bookings. The requester identity
// comes from the request context; the body's userId and the configured
// default are accepted only as explicit fallbacks, the latter logged.
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required booking information"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		userID = req.UserID
	}
	if userID <= 0 {
		if fallback := middleware.DefaultUserID(c); fallback > 0 {
			log.Printf("Booking request without user identity; attributing to default user %d", fallback)
			userID = fallback
		}
	}

	booking, err := services.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error creating booking: %v", err)
			c.JSON(status, models.BookingResponse{Error: "Failed to create booking"})
			return
		}
		c.JSON(status, models.BookingResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Success:          true,
		Booking:          booking,
		BookingReference: booking.BookingReference,
	})
}

// GetUserBookings handles GET /api/bookings?userId=
func GetUserBookings(c *gin.Context) {
	userIDParam := c.Query("userId")
	if userIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	userID, err := strconv.Atoi(userIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	bookings, err := services.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
