package request

import (
	"context"
	"sort"
	"testing"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	requests map[string]*entities.AidRequest
	nextTime time.Time
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{
		requests: make(map[string]*entities.AidRequest),
		nextTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRequestRepository) CreateRequest(_ context.Context, request *entities.AidRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = f.nextTime
	f.nextTime = f.nextTime.Add(time.Minute)
	f.requests[request.ID.String()] = request
	return nil
}

func (f *fakeRequestRepository) GetRequests(_ context.Context) ([]*entities.AidRequest, error) {
	var requests []*entities.AidRequest
	for _, request := range f.requests {
		requests = append(requests, request)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (f *fakeRequestRepository) GetRequestByID(_ context.Context, id string) (*entities.AidRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (f *fakeRequestRepository) UpdateRequest(_ context.Context, id string, updates map[string]interface{}) (int64, error) {
	request, ok := f.requests[id]
	if !ok {
		return 0, nil
	}
	if status, ok := updates["status"].(string); ok {
		request.Status = status
	}
	if completedBy, ok := updates["completed_by"]; ok {
		if completedBy == nil {
			request.CompletedBy = nil
		} else if id, ok := completedBy.(uuid.UUID); ok {
			request.CompletedBy = &id
		}
	}
	return 1, nil
}

func submitRequest() domain.SubmitRequestRequest {
	return domain.SubmitRequestRequest{
		Name:       "Ahmed",
		Contact:    "03009876543",
		Location:   "Multan",
		CNIC:       "36302-1234567-1",
		FamilySize: 5,
		NeedType:   "ration",
	}
}

func TestSubmitRequest_StartsPending(t *testing.T) {
	t.Parallel()

	svc := NewRequestService(newFakeRequestRepository())

	created, err := svc.SubmitRequest(context.Background(), submitRequest())
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusPending, created.Status)
	assert.Empty(t, created.CompletedBy)
}

func TestGetRequests_NewestFirst(t *testing.T) {
	t.Parallel()

	svc := NewRequestService(newFakeRequestRepository())

	first, err := svc.SubmitRequest(context.Background(), submitRequest())
	require.NoError(t, err)
	second, err := svc.SubmitRequest(context.Background(), submitRequest())
	require.NoError(t, err)

	requests, err := svc.GetRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, second.ID, requests[0].ID)
	assert.Equal(t, first.ID, requests[1].ID)
}

func TestUpdateRequestStatus_CompleteRequiresCompletedBy(t *testing.T) {
	t.Parallel()

	svc := NewRequestService(newFakeRequestRepository())

	created, err := svc.SubmitRequest(context.Background(), submitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateRequestStatus(context.Background(), created.ID, domain.UpdateRequestStatusRequest{
		Status: entities.RequestStatusCompleted,
	})
	require.ErrorIs(t, err, domain.ErrCompletedByRequired)
}

func TestUpdateRequestStatus_CompleteAndReopen(t *testing.T) {
	t.Parallel()

	svc := NewRequestService(newFakeRequestRepository())

	created, err := svc.SubmitRequest(context.Background(), submitRequest())
	require.NoError(t, err)

	ngoID := uuid.New().String()
	updated, err := svc.UpdateRequestStatus(context.Background(), created.ID, domain.UpdateRequestStatusRequest{
		Status:      entities.RequestStatusCompleted,
		CompletedBy: ngoID,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusCompleted, updated.Status)
	assert.Equal(t, ngoID, updated.CompletedBy)

	// Reopening must clear completed_by so the pairing invariant holds.
	reopened, err := svc.UpdateRequestStatus(context.Background(), created.ID, domain.UpdateRequestStatusRequest{
		Status: entities.RequestStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusPending, reopened.Status)
	assert.Empty(t, reopened.CompletedBy)
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewRequestService(newFakeRequestRepository())

	_, err := svc.UpdateRequestStatus(context.Background(), uuid.New().String(), domain.UpdateRequestStatusRequest{
		Status: entities.RequestStatusPending,
	})
	require.ErrorIs(t, err, domain.ErrRequestNotFound)
}
