package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"railway-booking/models"
	"railway-booking/services"
)

func TestBuildScheduleFilters_NoFilters(t *testing.T) {
	where, args := services.BuildScheduleFilters("", "")

	assert.Equal(t, "t.status = 'Active'", where)
	assert.Empty(t, args)
}

func TestBuildScheduleFilters_Search(t *testing.T) {
	where, args := services.BuildScheduleFilters("Rajdhani", "")

	assert.Contains(t, where, "t.train_name ILIKE $1")
	assert.Contains(t, where, "t.train_number ILIKE $1")
	assert.Len(t, args, 1)
	assert.Equal(t, "%Rajdhani%", args[0])
}

func TestBuildScheduleFilters_Region(t *testing.T) {
	where, args := services.BuildScheduleFilters("", "north")

	assert.Contains(t, where, "ds.city = ANY($1)")
	assert.Len(t, args, 1)
}

func TestBuildScheduleFilters_SearchAndRegion(t *testing.T) {
	where, args := services.BuildScheduleFilters("Express", "west")

	assert.Contains(t, where, "ILIKE $1")
	assert.Contains(t, where, "ds.city = ANY($2)")
	assert.Len(t, args, 2)
}

func TestBuildScheduleFilters_UnknownRegionIgnored(t *testing.T) {
	where, args := services.BuildScheduleFilters("", "central")

	assert.Equal(t, "t.status = 'Active'", where)
	assert.Empty(t, args)
}

func TestClassPrices_MapsSuppliedPrices(t *testing.T) {
	req := models.ScheduleRequest{
		AC1Price:     3200,
		AC2Price:     1800,
		SleeperPrice: 450,
	}

	prices := services.ClassPrices(req)

	assert.Equal(t, 3200.0, prices["AC 1"])
	assert.Equal(t, 1800.0, prices["AC 2"])
	assert.Equal(t, 450.0, prices["Sleeper"])
	assert.Zero(t, prices["AC 3"])
	assert.Zero(t, prices["General"])
}
