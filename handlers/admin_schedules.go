package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"railway-booking/models"
	"railway-booking/services"
)

// ListAdminSchedules handles GET /api/admin/schedules?trainId=
func ListAdminSchedules(c *gin.Context) {
	trainID := 0
	if v := c.Query("trainId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid train ID"})
			return
		}
		trainID = id
	}

	schedules, err := services.ListAdminSchedules(c.Request.Context(), trainID)
	if err != nil {
		respondError(c, err, "Failed to fetch schedules")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// CreateSchedule handles POST /api/admin/schedules: a route plus its
// class prices, persisted atomically
func CreateSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := services.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"schedule": route,
		"message":  "Schedule and pricing added successfully",
	})
}

// UpdateSchedule handles PUT /api/admin/schedules/:id; only the
// schedule fields change, pricing is untouched
func UpdateSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var req models.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := services.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": route})
}

// DeleteSchedule handles DELETE /api/admin/schedules/:id. Like trains,
// a route with bookings cannot be deleted.
func DeleteSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	if err := services.DeleteSchedule(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}

// GetScheduleBoard handles GET /api/schedules?search&status&route, the
// public filtered listing with status counters
func GetScheduleBoard(c *gin.Context) {
	schedules, stats, err := services.ListScheduleBoard(
		c.Request.Context(), c.Query("search"), c.Query("route"))
	if err != nil {
		respondError(c, err, "Failed to fetch schedules")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules, "stats": stats})
}
