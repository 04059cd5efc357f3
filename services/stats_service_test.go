package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"railway-booking/services"
)

func TestPercentChange_Growth(t *testing.T) {
	assert.Equal(t, 50.0, services.PercentChange(150, 100))
}

func TestPercentChange_Decline(t *testing.T) {
	assert.Equal(t, -25.0, services.PercentChange(75, 100))
}

func TestPercentChange_EmptyPriorWindow(t *testing.T) {
	// No division by zero: an empty comparison window reads as 0%
	assert.Equal(t, 0.0, services.PercentChange(4200, 0))
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "12.5", services.FormatChange(12.5))
	assert.Equal(t, "0.0", services.FormatChange(0))
	assert.Equal(t, "-8.3", services.FormatChange(-8.33))
}

func TestOnTimePercentage(t *testing.T) {
	assert.Equal(t, "75.0", services.OnTimePercentage(3, 4))
	assert.Equal(t, "100.0", services.OnTimePercentage(5, 5))
}

func TestOnTimePercentage_NoRoutes(t *testing.T) {
	assert.Equal(t, "0", services.OnTimePercentage(0, 0))
}
