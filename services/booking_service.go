package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"railway-booking/database"
	"railway-booking/models"
)

// GST rate applied to every booking total.
const gstRate = 0.05

// Tolerance when cross-checking caller-declared amounts against the
// published pricing.
const fareTolerance = 0.01

const referenceAttempts = 5

// CreateBooking persists a booking and its passenger rows as one
// transaction. Fares are re-derived from the route's published pricing;
// caller-supplied fares and totals are cross-checked and rejected on
// mismatch. Either everything commits or nothing does.
func CreateBooking(ctx context.Context, userID int, req models.BookingRequest) (*models.Booking, error) {
	journeyDate, err := time.Parse("2006-01-02", req.JourneyDate)
	if err != nil {
		return nil, ValidationError(fmt.Sprintf("invalid journey date %q, expected YYYY-MM-DD", req.JourneyDate))
	}

	if userID <= 0 {
		return nil, ValidationError("user identity required to create a booking")
	}

	pricing, err := GetPricingMap(ctx, req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing for route %d: %w", req.RouteID, err)
	}
	if len(pricing) == 0 {
		return nil, ValidationError(fmt.Sprintf("no published fares for route %d", req.RouteID))
	}

	fares, err := ResolveFares(pricing, req.Passengers)
	if err != nil {
		return nil, err
	}

	totalAmount, gstAmount, finalAmount := ComputeTotals(fares)

	if err := verifyDeclaredAmounts(req, totalAmount, gstAmount, finalAmount); err != nil {
		return nil, err
	}

	db := database.GetDB()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	bookingRef, err := generateBookingReference(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking := &models.Booking{
		BookingReference: bookingRef,
		UserID:           userID,
		RouteID:          req.RouteID,
		TrainID:          req.TrainID,
		JourneyDate:      journeyDate,
		TotalPassengers:  len(req.Passengers),
		TotalAmount:      totalAmount,
		GSTAmount:        gstAmount,
		FinalAmount:      finalAmount,
		PaymentStatus:    "Completed", // simulated payment flow
		BookingStatus:    "Confirmed",
		PaymentMethod:    req.PaymentMethod,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO bookings (
			booking_reference, user_id, route_id, train_id, journey_date,
			total_passengers, total_amount, gst_amount, final_amount,
			payment_status, booking_status, payment_method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, booking.BookingReference, booking.UserID, booking.RouteID, booking.TrainID,
		req.JourneyDate, booking.TotalPassengers, booking.TotalAmount,
		booking.GSTAmount, booking.FinalAmount, booking.PaymentStatus,
		booking.BookingStatus, booking.PaymentMethod,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO passengers (booking_id, full_name, age, gender, class_type, fare_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare passenger statement: %w", err)
	}
	defer stmt.Close()

	for i, p := range req.Passengers {
		if _, err := stmt.ExecContext(ctx, booking.ID, p.Name, p.Age, p.Gender, p.ClassType, fares[i]); err != nil {
			return nil, fmt.Errorf("failed to add passenger %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	log.Printf("Booking created: %s for %d passengers on route %d (total %.2f)",
		bookingRef, booking.TotalPassengers, booking.RouteID, booking.FinalAmount)

	return booking, nil
}

// ResolveFares maps each passenger to the published base fare for its
// class. An unsold class, or a caller-supplied fare that disagrees with
// the published one, rejects the booking.
func ResolveFares(pricing map[string]float64, passengers []models.PassengerRequest) ([]float64, error) {
	fares := make([]float64, len(passengers))
	for i, p := range passengers {
		base, ok := pricing[p.ClassType]
		if !ok {
			return nil, ValidationError(fmt.Sprintf("class %q is not sold on this route", p.ClassType))
		}
		if p.Fare != 0 && math.Abs(p.Fare-base) > fareTolerance {
			return nil, ValidationError(fmt.Sprintf(
				"fare %.2f for passenger %s does not match published fare %.2f for class %q",
				p.Fare, p.Name, base, p.ClassType))
		}
		fares[i] = base
	}
	return fares, nil
}

// ComputeTotals derives the booking money breakdown from per-passenger
// fares, rounded to paise
func ComputeTotals(fares []float64) (total, gst, final float64) {
	for _, f := range fares {
		total += f
	}
	total = round2(total)
	gst = round2(total * gstRate)
	final = round2(total + gst)
	return total, gst, final
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// verifyDeclaredAmounts cross-checks any amounts the caller declared
// against the server-derived ones
func verifyDeclaredAmounts(req models.BookingRequest, total, gst, final float64) error {
	check := func(name string, declared, derived float64) error {
		if declared != 0 && math.Abs(declared-derived) > fareTolerance {
			return ValidationError(fmt.Sprintf(
				"declared %s %.2f does not match computed %.2f", name, declared, derived))
		}
		return nil
	}

	if err := check("total amount", req.TotalAmount, total); err != nil {
		return err
	}
	if err := check("gst amount", req.GSTAmount, gst); err != nil {
		return err
	}
	return check("final amount", req.FinalAmount, final)
}

// NewReferenceCandidate produces a human-readable booking reference:
// BKG + epoch millis + 3-digit suffix
func NewReferenceCandidate() string {
	return fmt.Sprintf("BKG%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// generateBookingReference finds a reference not yet taken, checked
// inside the booking transaction so the subsequent insert cannot race a
// concurrent request past the unique constraint unnoticed. After a few
// collisions it falls back to a uuid-derived suffix.
func generateBookingReference(ctx context.Context, tx queryRower) (string, error) {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		ref := NewReferenceCandidate()

		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_reference = $1)", ref,
		).Scan(&exists)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}

		log.Printf("Booking reference collision on %s, retrying", ref)
	}

	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("BKG%d%s", time.Now().UnixMilli(), suffix), nil
}

// queryRower is the part of *sql.Tx the reference generator needs
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// GetUserBookings lists a user's bookings joined with train and route
// details, most recent journey first
func GetUserBookings(ctx context.Context, userID int) ([]models.UserBooking, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT
			b.id, b.booking_reference, b.user_id, b.route_id, b.train_id,
			b.journey_date, b.total_passengers, b.total_amount, b.gst_amount,
			b.final_amount, b.payment_status, b.booking_status, b.payment_method,
			b.created_at,
			t.train_name, t.train_number,
			r.departure_time, r.arrival_time,
			s1.name AS source_station, s1.city AS source_city,
			s2.name AS destination_station, s2.city AS destination_city
		FROM bookings b
		JOIN trains t ON b.train_id = t.id
		JOIN routes r ON b.route_id = r.id
		JOIN stations s1 ON r.source_station_id = s1.id
		JOIN stations s2 ON r.destination_station_id = s2.id
		WHERE b.user_id = $1
		ORDER BY b.journey_date DESC, b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.UserBooking
	for rows.Next() {
		var b models.UserBooking
		err := rows.Scan(
			&b.ID, &b.BookingReference, &b.UserID, &b.RouteID, &b.TrainID,
			&b.JourneyDate, &b.TotalPassengers, &b.TotalAmount, &b.GSTAmount,
			&b.FinalAmount, &b.PaymentStatus, &b.BookingStatus, &b.PaymentMethod,
			&b.CreatedAt,
			&b.TrainName, &b.TrainNumber,
			&b.DepartureTime, &b.ArrivalTime,
			&b.SourceStation, &b.SourceCity,
			&b.DestStation, &b.DestCity,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
