package models

import "time"

// Train types sold on the network.
var TrainTypes = []string{
	"Express", "Superfast", "Mail", "Passenger",
	"Duronto", "Shatabdi", "Rajdhani", "Vande Bharat",
}

// Train represents a train with its seat inventory per class
type Train struct {
	ID           int       `json:"id"`
	TrainNumber  string    `json:"train_number"`
	TrainName    string    `json:"train_name"`
	TrainType    string    `json:"train_type"`
	TotalSeats   int       `json:"total_seats"`
	AC1Seats     int       `json:"ac_1_seats"`
	AC2Seats     int       `json:"ac_2_seats"`
	AC3Seats     int       `json:"ac_3_seats"`
	SleeperSeats int       `json:"sleeper_seats"`
	GeneralSeats int       `json:"general_seats"`
	Status       string    `json:"status"` // Active, Maintenance, Inactive
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Populated by the admin listing only
	RouteCount int `json:"route_count,omitempty"`
}

// TrainRequest represents an admin create/update train payload
type TrainRequest struct {
	TrainNumber  string `json:"trainNumber" binding:"required"`
	TrainName    string `json:"trainName" binding:"required"`
	TrainType    string `json:"trainType" binding:"required"`
	TotalSeats   int    `json:"totalSeats" binding:"required,gt=0"`
	AC1Seats     int    `json:"ac1Seats"`
	AC2Seats     int    `json:"ac2Seats"`
	AC3Seats     int    `json:"ac3Seats"`
	SleeperSeats int    `json:"sleeperSeats"`
	GeneralSeats int    `json:"generalSeats"`
	Status       string `json:"status"`
}

// TrainResult is a search hit: an Active train on a matching route,
// annotated with per-class pricing and seat counts
type TrainResult struct {
	TrainID         int                `json:"train_id"`
	TrainName       string             `json:"train_name"`
	TrainNumber     string             `json:"train_number"`
	TrainType       string             `json:"train_type"`
	Status          string             `json:"status"`
	RouteID         int                `json:"route_id"`
	DepartureTime   string             `json:"departure_time"`
	ArrivalTime     string             `json:"arrival_time"`
	DurationMinutes int                `json:"duration_minutes"`
	DistanceKM      float64            `json:"distance_km"`
	DaysOfOperation string             `json:"days_of_operation"`
	SourceStation   string             `json:"source_station"`
	SourceCity      string             `json:"source_city"`
	SourceCode      string             `json:"source_code"`
	DestStation     string             `json:"destination_station"`
	DestCity        string             `json:"destination_city"`
	DestCode        string             `json:"destination_code"`
	AC1Seats        int                `json:"ac_1_seats"`
	AC2Seats        int                `json:"ac_2_seats"`
	AC3Seats        int                `json:"ac_3_seats"`
	SleeperSeats    int                `json:"sleeper_seats"`
	Pricing         map[string]float64 `json:"pricing"`
}
