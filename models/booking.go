package models

import "time"

// Booking represents a confirmed reservation with its money breakdown.
// GST is fixed at 5% of the ticket total; final_amount = total + gst.
type Booking struct {
	ID               int       `json:"id"`
	BookingReference string    `json:"booking_reference"`
	UserID           int       `json:"user_id"`
	RouteID          int       `json:"route_id"`
	TrainID          int       `json:"train_id"`
	JourneyDate      time.Time `json:"journey_date"`
	TotalPassengers  int       `json:"total_passengers"`
	TotalAmount      float64   `json:"total_amount"`
	GSTAmount        float64   `json:"gst_amount"`
	FinalAmount      float64   `json:"final_amount"`
	PaymentStatus    string    `json:"payment_status"`
	BookingStatus    string    `json:"booking_status"` // Confirmed, Pending, Cancelled
	PaymentMethod    string    `json:"payment_method"`
	CreatedAt        time.Time `json:"created_at"`
}

// Passenger is one booked seat within a booking
type Passenger struct {
	ID         int     `json:"id"`
	BookingID  int     `json:"booking_id"`
	FullName   string  `json:"full_name"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	SeatNumber string  `json:"seat_number,omitempty"`
	ClassType  string  `json:"class_type"`
	FareAmount float64 `json:"fare_amount"`
}

// PassengerRequest is one passenger in a booking request. Fare is
// optional; when supplied it must match the published fare for the
// class, which the server is authoritative for.
type PassengerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Age       int     `json:"age" binding:"required,gt=0"`
	Gender    string  `json:"gender" binding:"required"`
	ClassType string  `json:"classType" binding:"required"`
	Fare      float64 `json:"fare"`
}

// BookingRequest represents a booking creation payload
type BookingRequest struct {
	UserID        int                `json:"userId"`
	RouteID       int                `json:"routeId" binding:"required"`
	TrainID       int                `json:"trainId" binding:"required"`
	JourneyDate   string             `json:"journeyDate" binding:"required"`
	Passengers    []PassengerRequest `json:"passengers" binding:"required,min=1,dive"`
	TotalAmount   float64            `json:"totalAmount"`
	GSTAmount     float64            `json:"gstAmount"`
	FinalAmount   float64            `json:"finalAmount"`
	PaymentMethod string             `json:"paymentMethod"`
}

// BookingResponse represents a booking creation response
type BookingResponse struct {
	Success          bool     `json:"success"`
	Booking          *Booking `json:"booking,omitempty"`
	BookingReference string   `json:"bookingReference,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// UserBooking is a booking joined with train and route details for the
// my-bookings view
type UserBooking struct {
	Booking
	TrainName     string `json:"train_name"`
	TrainNumber   string `json:"train_number"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	SourceStation string `json:"source_station"`
	SourceCity    string `json:"source_city"`
	DestStation   string `json:"destination_station"`
	DestCity      string `json:"destination_city"`
}

// AdminBooking is a recent-bookings line for the admin dashboard
type AdminBooking struct {
	ID               int       `json:"id"`
	BookingReference string    `json:"booking_reference"`
	JourneyDate      time.Time `json:"journey_date"`
	FinalAmount      float64   `json:"final_amount"`
	BookingStatus    string    `json:"booking_status"`
	CreatedAt        time.Time `json:"created_at"`
	TrainName        string    `json:"train_name"`
	TrainNumber      string    `json:"train_number"`
	SourceCity       string    `json:"source_city"`
	DestCity         string    `json:"destination_city"`
	PassengerName    string    `json:"passenger_name,omitempty"`
}

// PassengerRecord is one line of the admin passenger manifest
type PassengerRecord struct {
	ID               int       `json:"id"`
	FullName         string    `json:"full_name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	SeatNumber       string    `json:"seat_number,omitempty"`
	ClassType        string    `json:"class_type"`
	FareAmount       float64   `json:"fare_amount"`
	BookingReference string    `json:"booking_reference"`
	JourneyDate      time.Time `json:"journey_date"`
	BookingStatus    string    `json:"booking_status"`
	TrainName        string    `json:"train_name"`
	TrainNumber      string    `json:"train_number"`
	SourceCity       string    `json:"source_city"`
	DestCity         string    `json:"destination_city"`
}
