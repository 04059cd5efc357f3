package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railway-booking/services"
)

// GetStats handles GET /api/admin/stats
func GetStats(c *gin.Context) {
	stats, err := services.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetAnalytics handles GET /api/admin/analytics
func GetAnalytics(c *gin.Context) {
	weekly, err := services.GetWeeklyBookings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch analytics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeklyBookings": weekly})
}

// GetAdminBookings handles GET /api/admin/bookings?limit=
func GetAdminBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	bookings, err := services.GetRecentBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetPassengers handles GET /api/admin/passengers?limit=
func GetPassengers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	passengers, err := services.GetPassengerManifest(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch passengers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"passengers": passengers})
}
