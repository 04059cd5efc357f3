package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"railway-booking/database"
	"railway-booking/models"
)

// ListAdminSchedules returns routes joined with train and station
// details, optionally restricted to one train
func ListAdminSchedules(ctx context.Context, trainID int) ([]models.AdminSchedule, error) {
	db := database.GetDB()

	query := `
		SELECT
			r.id, r.train_id, t.train_number, t.train_name,
			ss.name AS source_station, ss.code AS source_code,
			ds.name AS destination_station, ds.code AS destination_code,
			r.departure_time, r.arrival_time, r.duration_minutes,
			r.distance_km, r.days_of_operation
		FROM routes r
		JOIN trains t ON r.train_id = t.id
		JOIN stations ss ON r.source_station_id = ss.id
		JOIN stations ds ON r.destination_station_id = ds.id`

	var args []interface{}
	if trainID > 0 {
		query += " WHERE r.train_id = $1"
		args = append(args, trainID)
	}
	query += " ORDER BY t.train_number, r.departure_time"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.AdminSchedule
	for rows.Next() {
		var s models.AdminSchedule
		err := rows.Scan(
			&s.ID, &s.TrainID, &s.TrainNumber, &s.TrainName,
			&s.SourceStation, &s.SourceCode, &s.DestStation, &s.DestCode,
			&s.DepartureTime, &s.ArrivalTime, &s.DurationMinutes,
			&s.DistanceKM, &s.DaysOfOperation,
		)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// CreateSchedule inserts a route and its pricing rows as one
// transaction. At most one route may exist per (train, source,
// destination) triple.
func CreateSchedule(ctx context.Context, req models.ScheduleRequest) (*models.Route, error) {
	db := database.GetDB()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM routes
		WHERE train_id = $1
			AND source_station_id = $2
			AND destination_station_id = $3
	`, req.TrainID, req.SourceStationID, req.DestinationStationID).Scan(&existingID)
	if err == nil {
		return nil, ConflictError("Route already exists for this train and stations")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	route := &models.Route{
		TrainID:              req.TrainID,
		SourceStationID:      req.SourceStationID,
		DestinationStationID: req.DestinationStationID,
		DepartureTime:        req.DepartureTime,
		ArrivalTime:          req.ArrivalTime,
		DurationMinutes:      req.DurationMinutes,
		DistanceKM:           req.DistanceKM,
		DaysOfOperation:      req.DaysOfOperation,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO routes (
			train_id, source_station_id, destination_station_id,
			departure_time, arrival_time, duration_minutes, distance_km, days_of_operation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, route.TrainID, route.SourceStationID, route.DestinationStationID,
		route.DepartureTime, route.ArrivalTime, route.DurationMinutes,
		route.DistanceKM, route.DaysOfOperation,
	).Scan(&route.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ConflictError("Route already exists for this train and stations")
		}
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	prices := ClassPrices(req)
	for _, classType := range models.ClassTypes {
		price := prices[classType]
		if price <= 0 {
			continue
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO pricing (route_id, class_type, base_fare) VALUES ($1, $2, $3)",
			route.ID, classType, price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s pricing: %w", classType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit schedule: %w", err)
	}

	return route, nil
}

// ClassPrices maps the per-class price fields of a schedule request to
// their pricing class names
func ClassPrices(req models.ScheduleRequest) map[string]float64 {
	return map[string]float64{
		"AC 1":    req.AC1Price,
		"AC 2":    req.AC2Price,
		"AC 3":    req.AC3Price,
		"Sleeper": req.SleeperPrice,
		"General": req.GeneralPrice,
	}
}

// UpdateSchedule replaces a route's schedule fields; pricing is left
// untouched
func UpdateSchedule(ctx context.Context, id int, req models.ScheduleUpdateRequest) (*models.Route, error) {
	db := database.GetDB()

	route := &models.Route{ID: id}
	err := db.QueryRowContext(ctx, `
		UPDATE routes
		SET
			departure_time = $1,
			arrival_time = $2,
			duration_minutes = $3,
			distance_km = $4,
			days_of_operation = $5
		WHERE id = $6
		RETURNING train_id, source_station_id, destination_station_id,
			departure_time, arrival_time, duration_minutes, distance_km, days_of_operation
	`, req.DepartureTime, req.ArrivalTime, req.DurationMinutes,
		req.DistanceKM, req.DaysOfOperation, id,
	).Scan(
		&route.TrainID, &route.SourceStationID, &route.DestinationStationID,
		&route.DepartureTime, &route.ArrivalTime, &route.DurationMinutes,
		&route.DistanceKM, &route.DaysOfOperation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError("Schedule not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	return route, nil
}

// DeleteSchedule removes a route unless bookings reference it, matching
// the dependent-record policy applied to trains
func DeleteSchedule(ctx context.Context, id int) error {
	db := database.GetDB()

	var bookingCount int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE route_id = $1", id,
	).Scan(&bookingCount)
	if err != nil {
		return err
	}

	if bookingCount > 0 {
		return ConflictError("Cannot delete schedule with existing bookings. Deactivate the train instead.")
	}

	result, err := db.ExecContext(ctx, "DELETE FROM routes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NotFoundError("Schedule not found")
	}

	return nil
}

// regionCities groups station cities for the schedule board's region
// filter
var regionCities = map[string][]string{
	"north": {"New Delhi", "Jaipur", "Chandigarh", "Lucknow"},
	"south": {"Chennai", "Bangalore", "Hyderabad", "Kochi"},
	"east":  {"Kolkata", "Patna", "Bhubaneswar", "Guwahati"},
	"west":  {"Mumbai", "Ahmedabad", "Pune", "Goa"},
}

// BuildScheduleFilters turns the schedule board's search and region
// parameters into SQL conditions and their arguments. The leading
// condition pins the listing to Active trains.
func BuildScheduleFilters(search, region string) (string, []interface{}) {
	where := "t.status = 'Active'"
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		where += fmt.Sprintf(" AND (t.train_name ILIKE $%d OR t.train_number ILIKE $%d)", len(args), len(args))
	}

	if cities, ok := regionCities[region]; ok {
		args = append(args, pq.Array(cities))
		where += fmt.Sprintf(" AND ds.city = ANY($%d)", len(args))
	}

	return where, args
}

// ListScheduleBoard returns the filtered public schedule listing (at
// most 50 rows) together with its status counters
func ListScheduleBoard(ctx context.Context, search, region string) ([]models.ScheduleRow, *models.ScheduleStats, error) {
	db := database.GetDB()

	where, args := BuildScheduleFilters(search, region)

	query := fmt.Sprintf(`
		SELECT
			t.id, t.train_name, t.train_number, t.train_type,
			r.source_station_id, r.destination_station_id,
			r.departure_time, r.arrival_time, r.duration_minutes, r.days_of_operation,
			t.status,
			ds.name AS departure_station_name, ds.city AS departure_city, ds.code AS departure_code,
			ast.name AS arrival_station_name, ast.city AS arrival_city, ast.code AS arrival_code
		FROM trains t
		JOIN routes r ON t.id = r.train_id
		JOIN stations ds ON r.source_station_id = ds.id
		JOIN stations ast ON r.destination_station_id = ast.id
		WHERE %s
		ORDER BY r.departure_time ASC
		LIMIT 50
	`, where)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var schedules []models.ScheduleRow
	for rows.Next() {
		var s models.ScheduleRow
		err := rows.Scan(
			&s.ID, &s.TrainName, &s.TrainNumber, &s.TrainType,
			&s.SourceStationID, &s.DestStationID,
			&s.DepartureTime, &s.ArrivalTime, &s.DurationMinutes, &s.DaysOfOperation,
			&s.Status,
			&s.DepartureName, &s.DepartureCity, &s.DepartureCode,
			&s.ArrivalName, &s.ArrivalCity, &s.ArrivalCode,
		)
		if err != nil {
			return nil, nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	stats, err := scheduleBoardStats(ctx)
	if err != nil {
		return nil, nil, err
	}

	return schedules, stats, nil
}

func scheduleBoardStats(ctx context.Context) (*models.ScheduleStats, error) {
	db := database.GetDB()

	var stats models.ScheduleStats
	err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) AS total_trains,
			COUNT(*) FILTER (WHERE t.status = 'Active') AS on_time_count,
			COUNT(*) FILTER (WHERE t.status = 'Delayed') AS delayed_count,
			COUNT(*) FILTER (WHERE t.status = 'Cancelled') AS cancelled_count
		FROM routes r
		JOIN trains t ON r.train_id = t.id
		WHERE t.status IN ('Active', 'Delayed', 'Cancelled')
	`).Scan(&stats.TotalTrains, &stats.OnTimeCount, &stats.DelayedCount, &stats.CancelledCount)
	if err != nil {
		return nil, err
	}

	stats.OnTimePercentage = OnTimePercentage(stats.OnTimeCount, stats.TotalTrains)
	return &stats, nil
}

// OnTimePercentage formats on-time routes as a percentage of the total,
// zero-guarded
func OnTimePercentage(onTime, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(onTime)/float64(total)*100)
}
