package models

import "time"

// RailwayUser represents a passenger profile
type RailwayUser struct {
	ID          int       `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Pincode     string    `json:"pincode,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserRequest represents a profile creation payload
type UserRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}
