package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRequest = "request submitted successfully"
	MessageSuccessGetRequests   = "requests retrieved successfully"
	MessageSuccessUpdateRequest = "request updated successfully"

	MessageFailedCreateRequest = "failed to submit request"
	MessageFailedGetRequests   = "failed to retrieve requests"
	MessageFailedUpdateRequest = "failed to update request"

	ErrRequestNotFound      = errors.New("request not found")
	ErrRequestNotPending    = errors.New("request already completed or not found")
	ErrInvalidRequestStatus = errors.New("invalid request status")
	ErrCompletedByRequired  = errors.New("completed_by is required when completing a request")
)

type (
	SubmitRequestRequest struct {
		Name        string `json:"name" validate:"required"`
		Contact     string `json:"contact" validate:"required"`
		Location    string `json:"location" validate:"required"`
		CNIC        string `json:"cnic" validate:"required"`
		FamilySize  int    `json:"family_size" validate:"required,min=1"`
		NeedType    string `json:"need_type" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateRequestStatusRequest struct {
		Status      string `json:"status" validate:"required,oneof=pending completed"`
		CompletedBy string `json:"completed_by" validate:"omitempty,uuid"`
	}

	AidRequest struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Contact     string    `json:"contact"`
		Location    string    `json:"location"`
		CNIC        string    `json:"cnic"`
		FamilySize  int       `json:"family_size"`
		NeedType    string    `json:"need_type"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		CompletedBy string    `json:"completed_by,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
