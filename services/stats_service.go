package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"railway-booking/database"
	"railway-booking/models"
)

// GetDashboardStats aggregates the admin dashboard figures: trailing
// 30-day completed revenue and booking count against the prior 30-day
// window, and passengers booked today against yesterday.
func GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	db := database.GetDB()
	stats := &models.DashboardStats{}

	var totalRevenue, prevRevenue float64
	err := db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(final_amount), 0)
		FROM bookings
		WHERE payment_status = 'Completed'
			AND created_at >= NOW() - INTERVAL '30 days'
	`).Scan(&totalRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue: %w", err)
	}

	err = db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(final_amount), 0)
		FROM bookings
		WHERE payment_status = 'Completed'
			AND created_at >= NOW() - INTERVAL '60 days'
			AND created_at < NOW() - INTERVAL '30 days'
	`).Scan(&prevRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to get prior revenue: %w", err)
	}

	err = db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trains WHERE status = 'Active'",
	).Scan(&stats.ActiveTrains)
	if err != nil {
		return nil, fmt.Errorf("failed to count active trains: %w", err)
	}

	var prevBookings int
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE created_at >= NOW() - INTERVAL '30 days'
	`).Scan(&stats.TotalBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE created_at >= NOW() - INTERVAL '60 days'
			AND created_at < NOW() - INTERVAL '30 days'
	`).Scan(&prevBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior bookings: %w", err)
	}

	// Day boundaries for the passenger counters
	todayStart := now.BeginningOfDay()
	yesterdayStart := now.With(time.Now().AddDate(0, 0, -1)).BeginningOfDay()

	var passengersYesterday int
	err = db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_passengers), 0)
		FROM bookings
		WHERE created_at >= $1
	`, todayStart).Scan(&stats.PassengersToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's passengers: %w", err)
	}

	err = db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_passengers), 0)
		FROM bookings
		WHERE created_at >= $1 AND created_at < $2
	`, yesterdayStart, todayStart).Scan(&passengersYesterday)
	if err != nil {
		return nil, fmt.Errorf("failed to count yesterday's passengers: %w", err)
	}

	stats.TotalRevenue = totalRevenue
	stats.RevenueChange = FormatChange(PercentChange(totalRevenue, prevRevenue))
	stats.BookingsChange = FormatChange(PercentChange(float64(stats.TotalBookings), float64(prevBookings)))
	stats.PassengersChange = FormatChange(PercentChange(float64(stats.PassengersToday), float64(passengersYesterday)))

	return stats, nil
}

// PercentChange returns the percentage change from prev to current. An
// empty prior window yields 0, not a division error.
func PercentChange(current, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (current - prev) / prev * 100
}

// FormatChange renders a percentage change with one decimal place
func FormatChange(change float64) string {
	return fmt.Sprintf("%.1f", change)
}

// GetWeeklyBookings returns the 7-day booking histogram grouped by
// day-of-week for the dashboard chart
func GetWeeklyBookings(ctx context.Context) ([]models.WeeklyBooking, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT
			TO_CHAR(created_at, 'Dy') AS day,
			COUNT(*) AS bookings
		FROM bookings
		WHERE created_at >= NOW() - INTERVAL '7 days'
		GROUP BY TO_CHAR(created_at, 'Dy'), EXTRACT(DOW FROM created_at)
		ORDER BY EXTRACT(DOW FROM created_at)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weekly []models.WeeklyBooking
	for rows.Next() {
		var w models.WeeklyBooking
		if err := rows.Scan(&w.Day, &w.Bookings); err != nil {
			return nil, err
		}
		weekly = append(weekly, w)
	}

	return weekly, rows.Err()
}

// GetRecentBookings lists the most recent bookings for the admin
// dashboard, joined with train, route stations, and the booking user
func GetRecentBookings(ctx context.Context, limit int) ([]models.AdminBooking, error) {
	db := database.GetDB()

	if limit <= 0 {
		limit = 10
	}

	rows, err := db.QueryContext(ctx, `
		SELECT
			b.id, b.booking_reference, b.journey_date, b.final_amount,
			b.booking_status, b.created_at,
			t.train_name, t.train_number,
			s1.city AS source_city, s2.city AS destination_city,
			COALESCE(ru.full_name, '') AS passenger_name
		FROM bookings b
		JOIN trains t ON b.train_id = t.id
		JOIN routes r ON b.route_id = r.id
		JOIN stations s1 ON r.source_station_id = s1.id
		JOIN stations s2 ON r.destination_station_id = s2.id
		LEFT JOIN railway_users ru ON b.user_id = ru.id
		ORDER BY b.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.AdminBooking
	for rows.Next() {
		var b models.AdminBooking
		err := rows.Scan(
			&b.ID, &b.BookingReference, &b.JourneyDate, &b.FinalAmount,
			&b.BookingStatus, &b.CreatedAt,
			&b.TrainName, &b.TrainNumber,
			&b.SourceCity, &b.DestCity, &b.PassengerName,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// GetPassengerManifest lists recent passengers across all bookings
func GetPassengerManifest(ctx context.Context, limit int) ([]models.PassengerRecord, error) {
	db := database.GetDB()

	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT
			p.id, p.full_name, p.age, p.gender,
			COALESCE(p.seat_number, '') AS seat_number,
			p.class_type, p.fare_amount,
			b.booking_reference, b.journey_date, b.booking_status,
			t.train_name, t.train_number,
			s1.city AS source_city, s2.city AS destination_city
		FROM passengers p
		JOIN bookings b ON p.booking_id = b.id
		JOIN trains t ON b.train_id = t.id
		JOIN routes r ON b.route_id = r.id
		JOIN stations s1 ON r.source_station_id = s1.id
		JOIN stations s2 ON r.destination_station_id = s2.id
		ORDER BY b.journey_date DESC, p.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passengers []models.PassengerRecord
	for rows.Next() {
		var p models.PassengerRecord
		err := rows.Scan(
			&p.ID, &p.FullName, &p.Age, &p.Gender, &p.SeatNumber,
			&p.ClassType, &p.FareAmount,
			&p.BookingReference, &p.JourneyDate, &p.BookingStatus,
			&p.TrainName, &p.TrainNumber,
			&p.SourceCity, &p.DestCity,
		)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}

	return passengers, rows.Err()
}
