package request

import (
	"context"

	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.AidRequest) error
		GetRequests(ctx context.Context) ([]*entities.AidRequest, error)
		GetRequestByID(ctx context.Context, id string) (*entities.AidRequest, error)
		UpdateRequest(ctx context.Context, id string, updates map[string]interface{}) (int64, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.AidRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequests(ctx context.Context) ([]*entities.AidRequest, error) {
	var requests []*entities.AidRequest
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.AidRequest, error) {
	var request entities.AidRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateRequest(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.AidRequest{}).
		Where("id = ?", id).
		Updates(updates)
	return res.RowsAffected, res.Error
}
