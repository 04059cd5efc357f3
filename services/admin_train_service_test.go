package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway-booking/models"
	"railway-booking/services"
)

func TestCreateTrain_RejectsUnknownType(t *testing.T) {
	req := models.TrainRequest{
		TrainNumber: "12951",
		TrainName:   "Mumbai Rajdhani",
		TrainType:   "Bullet",
		TotalSeats:  500,
	}

	train, err := services.CreateTrain(context.Background(), req)

	assert.Nil(t, train)
	require.Error(t, err)
	assert.IsType(t, services.ValidationError(""), err)
}

func TestUpdateTrain_RejectsUnknownType(t *testing.T) {
	req := models.TrainRequest{
		TrainNumber: "12951",
		TrainName:   "Mumbai Rajdhani",
		TrainType:   "Metro",
		TotalSeats:  500,
	}

	train, err := services.UpdateTrain(context.Background(), 1, req)

	assert.Nil(t, train)
	require.Error(t, err)
	assert.IsType(t, services.ValidationError(""), err)
}
