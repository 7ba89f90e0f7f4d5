package allocation

import (
	"context"
	"errors"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	donationpkg "FoodBridge-Backend/pkg/donation"
	requestpkg "FoodBridge-Backend/pkg/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AllocationService interface {
		Allocate(ctx context.Context, req domain.AllocateRequest, ngoID string) (*domain.AllocateResult, error)
		GetNGOAllocations(ctx context.Context, ngoID string) ([]*domain.Allocation, error)
	}

	allocationService struct {
		allocationRepository AllocationRepository
	}
)

func NewAllocationService(allocationRepository AllocationRepository) AllocationService {
	return &allocationService{allocationRepository: allocationRepository}
}

func toAllocationResponse(alloc *entities.Allocation) *domain.Allocation {
	return &domain.Allocation{
		ID:         alloc.ID.String(),
		RequestID:  alloc.RequestID.String(),
		DonationID: alloc.DonationID.String(),
		NGOID:      alloc.NGOID.String(),
		Quantity:   alloc.Quantity,
		CreatedAt:  alloc.CreatedAt,
	}
}

// Allocate matches a quantity from a donation against a pending request on
// behalf of the acting NGO. Preconditions are re-read from the store, then
// the commit re-checks them at write time, so two operators racing over the
// same request or donation cannot both win.
func (s *allocationService) Allocate(ctx context.Context, req domain.AllocateRequest, ngoID string) (*domain.AllocateResult, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	donationID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	ngoUUID, err := uuid.Parse(ngoID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	request, err := s.allocationRepository.GetRequestByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	if request.Status != entities.RequestStatusPending {
		return nil, domain.ErrRequestNotPending
	}

	donation, err := s.allocationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	if donation.Quantity <= 0 || req.Quantity > donation.Quantity {
		return nil, domain.ErrInsufficientQuantity
	}

	alloc := &entities.Allocation{
		ID:         uuid.New(),
		RequestID:  requestID,
		DonationID: donationID,
		NGOID:      ngoUUID,
		Quantity:   req.Quantity,
	}

	if err := s.allocationRepository.Commit(ctx, alloc); err != nil {
		if errors.Is(err, domain.ErrRequestNotPending) || errors.Is(err, domain.ErrInsufficientQuantity) {
			return nil, err
		}
		return nil, domain.ErrAllocationFailed
	}

	// Re-read both records so the caller gets the committed state, not a
	// locally computed guess.
	request, err = s.allocationRepository.GetRequestByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	donation, err = s.allocationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		return nil, err
	}

	return &domain.AllocateResult{
		Allocation: *toAllocationResponse(alloc),
		Request:    *requestpkg.ToAidRequestResponse(request),
		Donation:   *donationpkg.ToDonationResponse(donation),
	}, nil
}

func (s *allocationService) GetNGOAllocations(ctx context.Context, ngoID string) ([]*domain.Allocation, error) {
	allocations, err := s.allocationRepository.GetNGOAllocations(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Allocation, 0, len(allocations))
	for _, alloc := range allocations {
		result = append(result, toAllocationResponse(alloc))
	}
	return result, nil
}
