package services_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway-booking/models"
	"railway-booking/services"
)

func TestResolveFares_UsesPublishedPricing(t *testing.T) {
	pricing := map[string]float64{"AC 2": 1800, "Sleeper": 450}

	passengers := []models.PassengerRequest{
		{Name: "Asha Verma", Age: 34, Gender: "Female", ClassType: "AC 2"},
		{Name: "Rohan Verma", Age: 36, Gender: "Male", ClassType: "Sleeper"},
	}

	fares, err := services.ResolveFares(pricing, passengers)

	require.NoError(t, err)
	assert.Equal(t, []float64{1800, 450}, fares)
}

func TestResolveFares_AcceptsMatchingDeclaredFare(t *testing.T) {
	pricing := map[string]float64{"AC 2": 1800}

	passengers := []models.PassengerRequest{
		{Name: "Asha Verma", Age: 34, Gender: "Female", ClassType: "AC 2", Fare: 1800},
	}

	fares, err := services.ResolveFares(pricing, passengers)

	require.NoError(t, err)
	assert.Equal(t, []float64{1800}, fares)
}

func TestResolveFares_RejectsUnsoldClass(t *testing.T) {
	pricing := map[string]float64{"AC 2": 1800}

	passengers := []models.PassengerRequest{
		{Name: "Asha Verma", Age: 34, Gender: "Female", ClassType: "AC 1"},
	}

	fares, err := services.ResolveFares(pricing, passengers)

	assert.Nil(t, fares)
	require.Error(t, err)
	assert.IsType(t, services.ValidationError(""), err)
	assert.Contains(t, err.Error(), "not sold on this route")
}

func TestResolveFares_RejectsFareMismatch(t *testing.T) {
	pricing := map[string]float64{"AC 2": 1800}

	passengers := []models.PassengerRequest{
		{Name: "Asha Verma", Age: 34, Gender: "Female", ClassType: "AC 2", Fare: 1500},
	}

	fares, err := services.ResolveFares(pricing, passengers)

	assert.Nil(t, fares)
	require.Error(t, err)
	assert.IsType(t, services.ValidationError(""), err)
	assert.Contains(t, err.Error(), "does not match published fare")
}

func TestComputeTotals_TwoPassengersAt1800(t *testing.T) {
	total, gst, final := services.ComputeTotals([]float64{1800, 1800})

	assert.Equal(t, 3600.0, total)
	assert.Equal(t, 180.0, gst)
	assert.Equal(t, 3780.0, final)
}

func TestComputeTotals_GSTIsFivePercentWithinRounding(t *testing.T) {
	total, gst, final := services.ComputeTotals([]float64{33.33, 33.33})

	assert.Equal(t, 66.66, total)
	assert.InDelta(t, total*0.05, gst, 0.005)
	assert.InDelta(t, total+gst, final, 0.005)
}

func TestComputeTotals_EmptyFares(t *testing.T) {
	total, gst, final := services.ComputeTotals(nil)

	assert.Zero(t, total)
	assert.Zero(t, gst)
	assert.Zero(t, final)
}

func TestNewReferenceCandidate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^BKG\d{13}\d{3}$`)

	for i := 0; i < 50; i++ {
		ref := services.NewReferenceCandidate()
		assert.Regexp(t, pattern, ref)
	}
}
