package models

// Seat classes; pricing rows use the same names.
var ClassTypes = []string{"AC 1", "AC 2", "AC 3", "Sleeper", "General"}

// Route represents a train route between two stations
type Route struct {
	ID                   int     `json:"id"`
	TrainID              int     `json:"train_id"`
	SourceStationID      int     `json:"source_station_id"`
	DestinationStationID int     `json:"destination_station_id"`
	DepartureTime        string  `json:"departure_time"`
	ArrivalTime          string  `json:"arrival_time"`
	DurationMinutes      int     `json:"duration_minutes"`
	DistanceKM           float64 `json:"distance_km"`
	DaysOfOperation      string  `json:"days_of_operation"` // e.g. "Mon,Tue,Fri"
}

// Pricing is the base fare for one class on one route
type Pricing struct {
	ClassType string  `json:"class_type"`
	BaseFare  float64 `json:"base_fare"`
}

// ScheduleRequest represents an admin create-schedule payload: a route
// plus the optional per-class prices to open for sale on it
type ScheduleRequest struct {
	TrainID              int     `json:"train_id" binding:"required"`
	SourceStationID      int     `json:"source_station_id" binding:"required"`
	DestinationStationID int     `json:"destination_station_id" binding:"required"`
	DepartureTime        string  `json:"departure_time" binding:"required"`
	ArrivalTime          string  `json:"arrival_time" binding:"required"`
	DurationMinutes      int     `json:"duration_minutes"`
	DistanceKM           float64 `json:"distance_km"`
	DaysOfOperation      string  `json:"days_of_operation"`
	AC1Price             float64 `json:"ac_1_price"`
	AC2Price             float64 `json:"ac_2_price"`
	AC3Price             float64 `json:"ac_3_price"`
	SleeperPrice         float64 `json:"sleeper_price"`
	GeneralPrice         float64 `json:"general_price"`
}

// ScheduleUpdateRequest replaces a route's schedule fields; pricing is
// untouched
type ScheduleUpdateRequest struct {
	DepartureTime   string  `json:"departure_time" binding:"required"`
	ArrivalTime     string  `json:"arrival_time" binding:"required"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKM      float64 `json:"distance_km"`
	DaysOfOperation string  `json:"days_of_operation"`
}

// AdminSchedule is a route joined with its train and stations for the
// admin schedule table
type AdminSchedule struct {
	ID              int     `json:"id"`
	TrainID         int     `json:"train_id"`
	TrainNumber     string  `json:"train_number"`
	TrainName       string  `json:"train_name"`
	SourceStation   string  `json:"source_station"`
	SourceCode      string  `json:"source_code"`
	DestStation     string  `json:"destination_station"`
	DestCode        string  `json:"destination_code"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKM      float64 `json:"distance_km"`
	DaysOfOperation string  `json:"days_of_operation"`
}

// ScheduleRow is one line of the public schedule board
type ScheduleRow struct {
	ID              int    `json:"id"`
	TrainName       string `json:"train_name"`
	TrainNumber     string `json:"train_number"`
	TrainType       string `json:"train_type"`
	SourceStationID int    `json:"source_station_id"`
	DestStationID   int    `json:"destination_station_id"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	DurationMinutes int    `json:"duration_minutes"`
	DaysOfOperation string `json:"days_of_operation"`
	Status          string `json:"status"`
	DepartureName   string `json:"departure_station_name"`
	DepartureCity   string `json:"departure_city"`
	DepartureCode   string `json:"departure_code"`
	ArrivalName     string `json:"arrival_station_name"`
	ArrivalCity     string `json:"arrival_city"`
	ArrivalCode     string `json:"arrival_code"`
}

// ScheduleStats summarizes the schedule board status counters
type ScheduleStats struct {
	TotalTrains      int    `json:"totalTrains"`
	OnTimeCount      int    `json:"onTimeCount"`
	DelayedCount     int    `json:"delayedCount"`
	CancelledCount   int    `json:"cancelledCount"`
	OnTimePercentage string `json:"onTimePercentage"`
}
