package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railway-booking/services"
)

// GetStations returns the full station list ordered by city
func GetStations(c *gin.Context) {
	stations, err := services.GetAllStations(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch stations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stations": stations})
}

// SearchTrains handles GET /api/trains/search?from&to&date
func SearchTrains(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	date := c.Query("date")

	if from == "" || to == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	trains, err := services.SearchTrains(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to search trains")
		return
	}

	if len(trains) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"trains":  trains,
			"message": "No trains found for this route",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

// FilterTrains handles GET /api/trains?from&to, the undated city filter
func FilterTrains(c *gin.Context) {
	trains, err := services.FilterTrains(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err, "Failed to fetch trains")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

// GetRoutePricing returns the per-class fares for a route
func GetRoutePricing(c *gin.Context) {
	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	pricing, err := services.GetRoutePricing(c.Request.Context(), routeID)
	if err != nil {
		respondError(c, err, "Failed to fetch pricing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pricing": pricing})
}
