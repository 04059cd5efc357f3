package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"railway-booking/database"
	"railway-booking/models"
)

// GetAllStations retrieves all stations ordered by city
func GetAllStations(ctx context.Context) ([]models.Station, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, code, city, state
		FROM stations
		ORDER BY city
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var station models.Station
		if err := rows.Scan(&station.ID, &station.Name, &station.Code, &station.City, &station.State); err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	return stations, rows.Err()
}

const trainResultColumns = `
	t.id AS train_id,
	t.train_name,
	t.train_number,
	t.train_type,
	t.status,
	r.id AS route_id,
	r.departure_time,
	r.arrival_time,
	r.duration_minutes,
	r.distance_km,
	r.days_of_operation,
	s1.name AS source_station,
	s1.city AS source_city,
	s1.code AS source_code,
	s2.name AS destination_station,
	s2.city AS destination_city,
	s2.code AS destination_code,
	t.ac_1_seats,
	t.ac_2_seats,
	t.ac_3_seats,
	t.sleeper_seats`

// SearchTrains resolves an (origin city, destination city, date) query
// to every Active train on a matching route, annotated with per-class
// pricing. City matching is case-insensitive exact. Zero matches is not
// an error.
func SearchTrains(ctx context.Context, from, to string) ([]models.TrainResult, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT `+trainResultColumns+`
		FROM routes r
		JOIN trains t ON r.train_id = t.id
		JOIN stations s1 ON r.source_station_id = s1.id
		JOIN stations s2 ON r.destination_station_id = s2.id
		WHERE LOWER(s1.city) = LOWER($1)
			AND LOWER(s2.city) = LOWER($2)
			AND t.status = 'Active'
		ORDER BY r.departure_time
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying routes: %w", err)
	}
	defer rows.Close()

	trains, err := scanTrainResults(rows)
	if err != nil {
		return nil, err
	}

	// Annotate each result with its route's class pricing. A pricing
	// failure degrades that result to an empty map rather than failing
	// the whole search.
	for i := range trains {
		pricing, err := GetPricingMap(ctx, trains[i].RouteID)
		if err != nil {
			log.Printf("Error fetching pricing for route %d: %v", trains[i].RouteID, err)
			pricing = map[string]float64{}
		}
		trains[i].Pricing = pricing
	}

	return trains, nil
}

// FilterTrains lists Active trains filtered by optional substring
// matches on source/destination city or station name
func FilterTrains(ctx context.Context, from, to string) ([]models.TrainResult, error) {
	db := database.GetDB()

	query := `
		SELECT ` + trainResultColumns + `
		FROM trains t
		JOIN routes r ON t.id = r.train_id
		JOIN stations s1 ON r.source_station_id = s1.id
		JOIN stations s2 ON r.destination_station_id = s2.id
		WHERE t.status = 'Active'`

	var args []interface{}
	if from != "" {
		args = append(args, "%"+from+"%")
		query += fmt.Sprintf(" AND (s1.city ILIKE $%d OR s1.name ILIKE $%d)", len(args), len(args))
	}
	if to != "" {
		args = append(args, "%"+to+"%")
		query += fmt.Sprintf(" AND (s2.city ILIKE $%d OR s2.name ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY r.departure_time"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying trains: %w", err)
	}
	defer rows.Close()

	return scanTrainResults(rows)
}

func scanTrainResults(rows *sql.Rows) ([]models.TrainResult, error) {
	var trains []models.TrainResult
	for rows.Next() {
		var t models.TrainResult
		err := rows.Scan(
			&t.TrainID, &t.TrainName, &t.TrainNumber, &t.TrainType, &t.Status,
			&t.RouteID, &t.DepartureTime, &t.ArrivalTime, &t.DurationMinutes,
			&t.DistanceKM, &t.DaysOfOperation,
			&t.SourceStation, &t.SourceCity, &t.SourceCode,
			&t.DestStation, &t.DestCity, &t.DestCode,
			&t.AC1Seats, &t.AC2Seats, &t.AC3Seats, &t.SleeperSeats,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning train: %w", err)
		}
		trains = append(trains, t)
	}

	return trains, rows.Err()
}

// GetPricingMap returns class -> base fare for a route
func GetPricingMap(ctx context.Context, routeID int) (map[string]float64, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT class_type, base_fare
		FROM pricing
		WHERE route_id = $1
	`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pricing := make(map[string]float64)
	for rows.Next() {
		var classType string
		var baseFare float64
		if err := rows.Scan(&classType, &baseFare); err != nil {
			return nil, err
		}
		pricing[classType] = baseFare
	}

	return pricing, rows.Err()
}

// GetRoutePricing lists a route's pricing rows, highest fare first
func GetRoutePricing(ctx context.Context, routeID int) ([]models.Pricing, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT class_type, base_fare
		FROM pricing
		WHERE route_id = $1
		ORDER BY base_fare DESC
	`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pricing []models.Pricing
	for rows.Next() {
		var p models.Pricing
		if err := rows.Scan(&p.ClassType, &p.BaseFare); err != nil {
			return nil, err
		}
		pricing = append(pricing, p)
	}

	return pricing, rows.Err()
}
