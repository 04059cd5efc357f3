package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railway-booking/models"
	"railway-booking/services"
)

// ListTrains handles GET /api/admin/trains
func ListTrains(c *gin.Context) {
	trains, err := services.ListTrains(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch trains")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

// CreateTrain handles POST /api/admin/trains
func CreateTrain(c *gin.Context) {
	var req models.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	train, err := services.CreateTrain(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create train")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "train": train})
}

// UpdateTrain handles PUT /api/admin/trains/:id
func UpdateTrain(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid train ID"})
		return
	}

	var req models.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	train, err := services.UpdateTrain(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update train")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "train": train})
}

// DeleteTrain handles DELETE /api/admin/trains/:id. Deletion is blocked
// while bookings reference the train.
func DeleteTrain(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid train ID"})
		return
	}

	if err := services.DeleteTrain(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete train")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
