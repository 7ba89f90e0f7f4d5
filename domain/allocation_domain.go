package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAllocate       = "donation allocated successfully"
	MessageSuccessGetAllocations = "allocations retrieved successfully"

	MessageFailedAllocate       = "failed to allocate donation"
	MessageFailedGetAllocations = "failed to retrieve allocations"

	// ErrAllocationFailed covers commit failures that are neither a
	// stale-state conflict nor a missing record; safe to retry.
	ErrAllocationFailed = errors.New("allocation could not be committed")
)

type (
	AllocateRequest struct {
		RequestID  string  `json:"request_id" validate:"required,uuid"`
		DonationID string  `json:"donation_id" validate:"required,uuid"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
	}

	Allocation struct {
		ID         string    `json:"id"`
		RequestID  string    `json:"request_id"`
		DonationID string    `json:"donation_id"`
		NGOID      string    `json:"ngo_id"`
		Quantity   float64   `json:"quantity"`
		CreatedAt  time.Time `json:"created_at"`
	}

	// AllocateResult carries the post-commit projections of both
	// records so the caller can merge them into its local view.
	AllocateResult struct {
		Allocation Allocation `json:"allocation"`
		Request    AidRequest `json:"request"`
		Donation   Donation   `json:"donation"`
	}
)
