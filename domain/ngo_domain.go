package domain

import (
	"errors"
)

var (
	MessageSuccessSignup         = "NGO registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessGetPendingNGOs = "pending NGOs retrieved successfully"
	MessageSuccessVerifyNGO      = "NGO verified"

	MessageFailedSignup         = "failed to register NGO"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedGetPendingNGOs = "failed to retrieve pending NGOs"
	MessageFailedVerifyNGO      = "failed to verify NGO"

	ErrNGONotFound = errors.New("NGO not found")
	ErrEmailExists = errors.New("NGO with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a login failure does not reveal whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNGONotVerified     = errors.New("account is pending admin approval")
)

type (
	NGOSignupRequest struct {
		Name               string `json:"name" validate:"required"`
		Email              string `json:"email" validate:"required,email"`
		Phone              string `json:"phone" validate:"required"`
		City               string `json:"city" validate:"required"`
		RegistrationNumber string `json:"registration_number" validate:"required"`
		Password           string `json:"password" validate:"required,min=8"`
	}

	NGOLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	NGO struct {
		ID                 string `json:"id"`
		Name               string `json:"name"`
		Email              string `json:"email"`
		Phone              string `json:"phone"`
		City               string `json:"city"`
		RegistrationNumber string `json:"registration_number"`
		IsVerified         bool   `json:"is_verified"`
	}

	NGOLoginResponse struct {
		Token string `json:"token"`
		NGO   NGO    `json:"ngo"`
	}
)
