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

// ListTrains returns every train with its route count for the admin
// console
func ListTrains(ctx context.Context) ([]models.Train, error) {
	db := database.GetDB()

	rows, err := db.QueryContext(ctx, `
		SELECT
			t.id, t.train_number, t.train_name, t.train_type, t.total_seats,
			t.ac_1_seats, t.ac_2_seats, t.ac_3_seats, t.sleeper_seats, t.general_seats,
			t.status, t.created_at, t.updated_at,
			COUNT(DISTINCT r.id) AS route_count
		FROM trains t
		LEFT JOIN routes r ON t.id = r.train_id
		GROUP BY t.id
		ORDER BY t.train_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trains []models.Train
	for rows.Next() {
		var t models.Train
		err := rows.Scan(
			&t.ID, &t.TrainNumber, &t.TrainName, &t.TrainType, &t.TotalSeats,
			&t.AC1Seats, &t.AC2Seats, &t.AC3Seats, &t.SleeperSeats, &t.GeneralSeats,
			&t.Status, &t.CreatedAt, &t.UpdatedAt, &t.RouteCount,
		)
		if err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}

	return trains, rows.Err()
}

// CreateTrain inserts a new train. The train number is pre-checked and
// the unique constraint handled as a second line of defense, since the
// pre-check has a race window.
func CreateTrain(ctx context.Context, req models.TrainRequest) (*models.Train, error) {
	if !validTrainType(req.TrainType) {
		return nil, ValidationError(fmt.Sprintf("unknown train type %q", req.TrainType))
	}

	db := database.GetDB()

	var existingID int
	err := db.QueryRowContext(ctx,
		"SELECT id FROM trains WHERE train_number = $1", req.TrainNumber,
	).Scan(&existingID)
	if err == nil {
		return nil, ConflictError(fmt.Sprintf(
			"Train number %s already exists. Please use a different train number.", req.TrainNumber))
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}

	train := &models.Train{
		TrainNumber:  req.TrainNumber,
		TrainName:    req.TrainName,
		TrainType:    req.TrainType,
		TotalSeats:   req.TotalSeats,
		AC1Seats:     req.AC1Seats,
		AC2Seats:     req.AC2Seats,
		AC3Seats:     req.AC3Seats,
		SleeperSeats: req.SleeperSeats,
		GeneralSeats: req.GeneralSeats,
		Status:       status,
	}

	err = db.QueryRowContext(ctx, `
		INSERT INTO trains (
			train_number, train_name, train_type, total_seats,
			ac_1_seats, ac_2_seats, ac_3_seats, sleeper_seats, general_seats,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, train.TrainNumber, train.TrainName, train.TrainType, train.TotalSeats,
		train.AC1Seats, train.AC2Seats, train.AC3Seats, train.SleeperSeats,
		train.GeneralSeats, train.Status,
	).Scan(&train.ID, &train.CreatedAt, &train.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ConflictError("Train number already exists. Please use a different train number.")
		}
		return nil, fmt.Errorf("failed to create train: %w", err)
	}

	return train, nil
}

// UpdateTrain replaces a train's mutable fields
func UpdateTrain(ctx context.Context, id int, req models.TrainRequest) (*models.Train, error) {
	if !validTrainType(req.TrainType) {
		return nil, ValidationError(fmt.Sprintf("unknown train type %q", req.TrainType))
	}

	db := database.GetDB()

	train := &models.Train{
		ID:           id,
		TrainNumber:  req.TrainNumber,
		TrainName:    req.TrainName,
		TrainType:    req.TrainType,
		TotalSeats:   req.TotalSeats,
		AC1Seats:     req.AC1Seats,
		AC2Seats:     req.AC2Seats,
		AC3Seats:     req.AC3Seats,
		SleeperSeats: req.SleeperSeats,
		GeneralSeats: req.GeneralSeats,
		Status:       req.Status,
	}

	err := db.QueryRowContext(ctx, `
		UPDATE trains
		SET
			train_number = $1,
			train_name = $2,
			train_type = $3,
			total_seats = $4,
			ac_1_seats = $5,
			ac_2_seats = $6,
			ac_3_seats = $7,
			sleeper_seats = $8,
			general_seats = $9,
			status = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING id, created_at, updated_at
	`, train.TrainNumber, train.TrainName, train.TrainType, train.TotalSeats,
		train.AC1Seats, train.AC2Seats, train.AC3Seats, train.SleeperSeats,
		train.GeneralSeats, train.Status, id,
	).Scan(&train.ID, &train.CreatedAt, &train.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError("Train not found")
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ConflictError("Train number already exists. Please use a different train number.")
		}
		return nil, fmt.Errorf("failed to update train: %w", err)
	}

	return train, nil
}

// DeleteTrain removes a train unless bookings reference it
func DeleteTrain(ctx context.Context, id int) error {
	db := database.GetDB()

	var bookingCount int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE train_id = $1", id,
	).Scan(&bookingCount)
	if err != nil {
		return err
	}

	if bookingCount > 0 {
		return ConflictError("Cannot delete train with existing bookings. Set status to Inactive instead.")
	}

	result, err := db.ExecContext(ctx, "DELETE FROM trains WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete train: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NotFoundError("Train not found")
	}

	return nil
}

func validTrainType(trainType string) bool {
	for _, t := range models.TrainTypes {
		if t == trainType {
			return true
		}
	}
	return false
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (class 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
