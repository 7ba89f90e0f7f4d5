package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation = "donation submitted successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessUpdateDonation = "donation updated successfully"

	MessageFailedCreateDonation = "failed to submit donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedUpdateDonation = "failed to update donation"

	ErrDonationNotFound     = errors.New("donation not found")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrNegativeQuantity     = errors.New("quantity must not be negative")
	ErrInsufficientQuantity = errors.New("donation has insufficient remaining quantity")
)

type (
	SubmitDonationRequest struct {
		Name         string  `json:"name" validate:"required"`
		Contact      string  `json:"contact" validate:"required"`
		Location     string  `json:"location" validate:"required"`
		FoodType     string  `json:"food_type" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		QuantityUnit string  `json:"quantity_unit" validate:"required"`
		Description  string  `json:"description" validate:"omitempty"`
	}

	UpdateDonationQuantityRequest struct {
		Quantity float64 `json:"quantity" validate:"gte=0"`
	}

	Donation struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Contact      string    `json:"contact"`
		Location     string    `json:"location"`
		FoodType     string    `json:"food_type"`
		Quantity     float64   `json:"quantity"`
		QuantityUnit string    `json:"quantity_unit"`
		Description  string    `json:"description"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
