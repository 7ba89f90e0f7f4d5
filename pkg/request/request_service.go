package request

import (
	"context"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"github.com/google/uuid"
)

type (
	RequestService interface {
		SubmitRequest(ctx context.Context, req domain.SubmitRequestRequest) (*domain.AidRequest, error)
		GetRequests(ctx context.Context) ([]*domain.AidRequest, error)
		UpdateRequestStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest) (*domain.AidRequest, error)
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

func ToAidRequestResponse(request *entities.AidRequest) *domain.AidRequest {
	resp := &domain.AidRequest{
		ID:          request.ID.String(),
		Name:        request.Name,
		Contact:     request.Contact,
		Location:    request.Location,
		CNIC:        request.CNIC,
		FamilySize:  request.FamilySize,
		NeedType:    request.NeedType,
		Description: request.Description,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
	}
	if request.CompletedBy != nil {
		resp.CompletedBy = request.CompletedBy.String()
	}
	return resp
}

func (s *requestService) SubmitRequest(ctx context.Context, req domain.SubmitRequestRequest) (*domain.AidRequest, error) {
	request := &entities.AidRequest{
		Name:        req.Name,
		Contact:     req.Contact,
		Location:    req.Location,
		CNIC:        req.CNIC,
		FamilySize:  req.FamilySize,
		NeedType:    req.NeedType,
		Description: req.Description,
		Status:      entities.RequestStatusPending,
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return ToAidRequestResponse(request), nil
}

func (s *requestService) GetRequests(ctx context.Context) ([]*domain.AidRequest, error) {
	requests, err := s.requestRepository.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AidRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, ToAidRequestResponse(request))
	}
	return result, nil
}

// UpdateRequestStatus is the administrative correction path. Completing a
// request here requires an explicit completed_by; reopening clears it, so
// the status/completed_by pairing holds either way.
func (s *requestService) UpdateRequestStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest) (*domain.AidRequest, error) {
	updates := map[string]interface{}{"status": req.Status}

	switch req.Status {
	case entities.RequestStatusCompleted:
		if req.CompletedBy == "" {
			return nil, domain.ErrCompletedByRequired
		}
		completedBy, err := uuid.Parse(req.CompletedBy)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		updates["completed_by"] = completedBy
	case entities.RequestStatusPending:
		updates["completed_by"] = nil
	default:
		return nil, domain.ErrInvalidRequestStatus
	}

	rows, err := s.requestRepository.UpdateRequest(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrRequestNotFound
	}

	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAidRequestResponse(request), nil
}
