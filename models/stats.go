package models

// DashboardStats aggregates the trailing-30-day dashboard figures with
// percentage changes against the prior window
type DashboardStats struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	RevenueChange    string  `json:"revenueChange"`
	ActiveTrains     int     `json:"activeTrains"`
	TotalBookings    int     `json:"totalBookings"`
	BookingsChange   string  `json:"bookingsChange"`
	PassengersToday  int     `json:"passengersToday"`
	PassengersChange string  `json:"passengersChange"`
}

// WeeklyBooking is one bar of the 7-day booking histogram
type WeeklyBooking struct {
	Day      string `json:"day"`
	Bookings int    `json:"bookings"`
}
