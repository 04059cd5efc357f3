package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"railway-booking/database"
	"railway-booking/models"
)

// CreateUser inserts a passenger profile
func CreateUser(ctx context.Context, req models.UserRequest) (*models.RailwayUser, error) {
	db := database.GetDB()

	user := &models.RailwayUser{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
	}

	err := db.QueryRowContext(ctx, `
		INSERT INTO railway_users (
			full_name, email, phone, date_of_birth, gender,
			address, city, state, pincode
		) VALUES ($1, $2, $3, NULLIF($4, '')::date, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, req.FullName, req.Email, req.Phone, req.DateOfBirth, req.Gender,
		req.Address, req.City, req.State, req.Pincode,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ConflictError(fmt.Sprintf("A user with email %s already exists", req.Email))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail looks up a passenger profile; a missing user returns
// nil without error
func GetUserByEmail(ctx context.Context, email string) (*models.RailwayUser, error) {
	db := database.GetDB()

	var user models.RailwayUser
	var dateOfBirth sql.NullTime
	var gender, address, city, state, pincode sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone, date_of_birth, gender,
			address, city, state, pincode, created_at
		FROM railway_users
		WHERE email = $1
	`, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Phone,
		&dateOfBirth, &gender, &address, &city, &state, &pincode,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if dateOfBirth.Valid {
		user.DateOfBirth = dateOfBirth.Time.Format("2006-01-02")
	}
	user.Gender = gender.String
	user.Address = address.String
	user.City = city.String
	user.State = state.String
	user.Pincode = pincode.String

	return &user, nil
}
